package domain

// ChangeKind - тип дельты, доставленной подпиской на коллекцию
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota
	ChangeModified
	ChangeRemoved
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// DocumentChange - одна дельта из пакета изменений живой подписки.
// Fields - сырой набор полей документа на момент изменения.
type DocumentChange struct {
	Kind       ChangeKind
	DocumentID string
	Fields     map[string]interface{}
}
