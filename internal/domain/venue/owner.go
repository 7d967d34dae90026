package venue

// Owner is a tagged variant: the upstream catalog sometimes serializes a
// venue owner as a bare display name and sometimes as a full profile record.
// Normalization happens in the catalog client; core logic only ever sees this
// type.
type Owner struct {
	name   string
	email  string
	avatar string
	full   bool
}

func NewOwnerName(name string) Owner {
	return Owner{name: name}
}

func NewOwnerFull(name, email, avatar string) Owner {
	return Owner{name: name, email: email, avatar: avatar, full: true}
}

func (o Owner) Name() string {
	return o.name
}

// Email is only meaningful when IsFull reports true.
func (o Owner) Email() string {
	return o.email
}

func (o Owner) Avatar() string {
	return o.avatar
}

func (o Owner) IsFull() bool {
	return o.full
}

func (o Owner) IsZero() bool {
	return o == Owner{}
}
