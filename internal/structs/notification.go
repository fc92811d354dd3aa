package structs

type SubjectKind string

const (
	SubjectEmailAddress SubjectKind = "email_address"
	SubjectNode         SubjectKind = "node"
	SubjectHost         SubjectKind = "host"
	SubjectIPAddress    SubjectKind = "ip_address"
)

// Notification asks for one abuse report about Subject to be sent to
// RecipientAddress.
type Notification struct {
	Kind             SubjectKind `json:"kind"`
	Subject          string      `json:"subject"`
	RecipientAddress string      `json:"recipient_address"`
}

// Result is an enriched report together with the notifications it produced.
type Result struct {
	Report        Report         `json:"report"`
	Notifications []Notification `json:"notifications"`
}
