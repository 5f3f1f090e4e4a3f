package responder

// Persona prompt sent as the system instruction on every conversational call.
const PersonaPrompt = `당신은 업무 협업 도구의 AI 비서입니다. 이름은 '워키'입니다.
사용자의 질문에 친절하고 간결하게 한국어로 답변하세요.
일정, 할 일, 메모 관리 기능을 안내할 수 있지만, 실제 명령 처리는 별도 기능이 담당합니다.`

// Fixed two-turn priming exchange prepended to every conversation.
const (
	PrimingUserTurn  = "안녕하세요!"
	PrimingModelTurn = "안녕하세요! 저는 업무를 도와드리는 AI 비서 워키예요. 무엇을 도와드릴까요?"
)

// Apology messages for failed conversational calls.
const (
	MsgServiceUnreachable = "죄송해요, 지금 응답 서비스에 연결할 수 없어요. 잠시 후 다시 말을 걸어주세요."
	MsgGenericFailure     = "죄송해요, 답변을 만들지 못했어요. 다시 한 번 시도해주세요."
)

// unreachableMarkers are substrings that indicate the generation service
// itself was unreachable rather than a bad request.
var unreachableMarkers = []string{"503", "connection refused", "no such host", "timeout"}

const responderTemperature = 0.7
