package router

import (
	"context"
	"strings"
)

// Classify determines the requested action and target entity for a message.
// Unmatchable text is not an error: it classifies as chat with no entity.
func (r *KeywordRouter) Classify(ctx context.Context, message string) RouterOutput {
	action := classifyAction(message)
	if action == ActionChat {
		return RouterOutput{Action: ActionChat, Entity: EntityNone}
	}

	entity := classifyEntity(message)
	if entity == EntityNone {
		// A command without a recognizable target is not actionable.
		r.l.Debugf(ctx, "%s: action %s without entity, downgrading to chat", LogPrefixClassify, action)
		return RouterOutput{Action: ActionChat, Entity: EntityNone}
	}

	r.l.Infof(ctx, "%s: classified as %s/%s", LogPrefixClassify, action, entity)
	return RouterOutput{Action: action, Entity: entity}
}

func classifyAction(message string) Action {
	for _, rule := range actionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(message, kw) {
				return rule.action
			}
		}
	}
	return ActionChat
}

func classifyEntity(message string) Entity {
	for _, rule := range entityRules {
		for _, kw := range rule.keywords {
			if strings.Contains(message, kw) {
				return rule.entity
			}
		}
	}
	return EntityNone
}

// StripKeywords removes the entity and action keywords that classification
// matched, plus trailing particles and politeness suffixes, from a message.
// Only the first-matching keyword per category is stripped: sibling keywords
// left in place are title material, not command words ("미팅" in a message
// classified through "일정").
func StripKeywords(message string) string {
	for _, rule := range entityRules {
		if kw, ok := matchKeyword(message, rule.keywords); ok {
			message = strings.ReplaceAll(message, kw, "")
			break
		}
	}
	for _, rule := range actionRules {
		if kw, ok := matchKeyword(message, rule.keywords); ok {
			message = strings.ReplaceAll(message, kw, "")
			break
		}
	}
	for _, particle := range []string{"해줘", "해 줘", "해주세요", "주세요", "해봐", "하자", "좀", "까지", "에서", "으로", "에게"} {
		message = strings.ReplaceAll(message, particle, "")
	}
	return strings.TrimSpace(message)
}

func matchKeyword(message string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			return kw, true
		}
	}
	return "", false
}
