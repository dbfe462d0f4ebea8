package email

type SendInput struct {
	To        string
	Subject   string
	Body      string
	InReplyTo string
}

type SendOutput struct {
	ID      string
	Message string
}

type SyncOutput struct {
	Message string
	Synced  int
}
