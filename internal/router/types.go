package router

// Action is the operation class a message requests.
type Action string

const (
	ActionAdd    Action = "add"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"
	ActionChat   Action = "chat"
)

// Entity is the domain object type a command targets.
type Entity string

const (
	EntityEvent Entity = "event"
	EntityTodo  Entity = "todo"
	EntityMemo  Entity = "memo"
	EntityNone  Entity = "none"
)

// RouterOutput is the classification result for one message.
type RouterOutput struct {
	Action Action `json:"action"`
	Entity Entity `json:"entity"`
}
