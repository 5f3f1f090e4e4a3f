package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// actionRule binds one action class to its keyword vocabulary.
// Rules are evaluated top to bottom; the first rule with a keyword hit wins,
// which makes the add > update > delete > list precedence explicit.
type actionRule struct {
	action   Action
	keywords []string
}

var actionRules = []actionRule{
	{ActionAdd, []string{"추가", "만들어", "생성", "등록", "잡아"}},
	{ActionUpdate, []string{"수정", "변경", "바꿔", "옮겨"}},
	{ActionDelete, []string{"삭제", "지워", "취소"}},
	{ActionList, []string{"알려줘", "보여줘", "조회", "목록", "확인", "뭐가 있"}},
}

// entityRule binds one entity type to its keyword vocabulary.
// Evaluated in order: event, todo, memo; first hit wins.
type entityRule struct {
	entity   Entity
	keywords []string
}

var entityRules = []entityRule{
	{EntityEvent, []string{"일정", "미팅", "회의", "약속", "스케줄"}},
	{EntityTodo, []string{"할 일", "할일", "투두", "태스크", "업무"}},
	{EntityMemo, []string{"메모", "노트", "기록"}},
}
