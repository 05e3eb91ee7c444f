package config

const (
	// Telegram limits
	MaxTelegramMessageLen = 4096

	// User-facing texts
	WelcomeText        = "Ask me anything about your document!"
	UploadPromptText   = "Send me a PDF, TXT, or MD file and I will answer questions about it."
	InvalidFileText    = "Please upload a PDF, TXT, or MD file."
	UploadErrorPrefix  = "Error uploading file: "
	ConfirmResetText   = "Are you sure you want to close this document? The chat history will be lost."
	SessionActiveText  = "A document is already open. Use /close before uploading another one."
	UploadRunningText  = "A document is still being processed, please wait."
	ChatBusyText       = "Still thinking about your previous question, please wait."
	NoDocumentText     = "No document is open. Upload one to start."
	ConfirmExpiredText = "This confirmation has expired. Send /close again."
)
