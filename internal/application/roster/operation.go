package roster

// Operation names the action that produced a snapshot.
type Operation string

const (
	OpNone           Operation = ""
	OpLoadAll        Operation = "load_all"
	OpLoadOne        Operation = "load_one"
	OpCreate         Operation = "create"
	OpUpdate         Operation = "update"
	OpDelete         Operation = "delete"
	OpClearError     Operation = "clear_error"
	OpClearSucceeded Operation = "clear_succeeded"
	OpClearSelected  Operation = "clear_selected"
)

// IsMutation reports whether the operation changes the remote collection.
func (o Operation) IsMutation() bool {
	switch o {
	case OpCreate, OpUpdate, OpDelete:
		return true
	default:
		return false
	}
}

// FallbackMessage is the display text for a failure that carries no message.
func (o Operation) FallbackMessage() string {
	switch o {
	case OpLoadAll:
		return "error loading students"
	case OpLoadOne:
		return "error loading student"
	case OpCreate:
		return "error creating student"
	case OpUpdate:
		return "error updating student"
	case OpDelete:
		return "error deleting student"
	default:
		return "unexpected error"
	}
}
