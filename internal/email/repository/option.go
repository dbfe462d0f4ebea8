package repository

type SendOptions struct {
	To        string
	Subject   string
	Body      string
	InReplyTo string
}

type SendResult struct {
	ID      string
	Message string
}

type SyncResult struct {
	Message string
	Synced  int
}
