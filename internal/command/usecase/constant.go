package usecase

// User-facing reply templates. Every dispatch path returns one of these;
// raw store errors never reach the end user.
const (
	MsgEventTitleRequired = `어떤 일정인지 제목을 알려주세요. 예: "팀 회의" 일정 추가해줘`
	MsgTaskTitleRequired  = `어떤 할 일인지 제목을 알려주세요. 예: 보고서 작성 할 일 추가해줘`

	MsgEventCreatedFmt = `"%s" 일정을 등록했어요. %s`
	MsgTaskCreatedFmt  = `"%s" 할 일을 추가했어요. 마감: %s`
	MsgNoteCreatedFmt  = `"%s" 메모를 저장했어요.`

	MsgEventListHeader = "다가오는 일정이에요:"
	MsgNoEvents        = "다가오는 일정이 없어요."
	MsgTaskListHeader  = "남은 할 일이에요:"
	MsgNoTasks         = "남아있는 할 일이 없어요."

	MsgUpdateNotSupported   = "수정은 아직 지원하지 않아요. 지금은 추가와 조회만 할 수 있어요."
	MsgDeleteNotSupported   = "삭제는 아직 지원하지 않아요. 지금은 추가와 조회만 할 수 있어요."
	MsgMemoListNotSupported = "메모 목록 조회는 아직 지원하지 않아요."

	MsgStoreFailure = "명령을 처리하지 못했어요. 잠시 후 다시 시도해주세요."
)

const (
	defaultNoteTitle     = "새 메모"
	defaultEventCategory = "meeting"
	// defaultEventColor is a Google Calendar event color ID ("1" through
	// "11"); "9" is the blue the calendar UI uses for meetings.
	defaultEventColor = "9"
)

const (
	// listLimit caps every list reply at five items.
	listLimit = 5
	// minTitleRunes is the shortest residue accepted as a title.
	minTitleRunes = 3
)

const (
	LogPrefixInterpret = "command.Interpret"
	LogPrefixDispatch  = "command.dispatch"
)
