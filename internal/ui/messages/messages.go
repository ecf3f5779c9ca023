package messages

import "github.com/talentwork128/mailvet/internal/api"

// View transition messages.
type (
	OpenLoginMsg    struct{}
	OpenRegisterMsg struct{}
	OpenVerifyMsg   struct{ Email string }
	OpenPreviewMsg  struct{ Template api.Template }
	OpenFormMsg     struct{ Editing *api.Template }
	GoBackMsg       struct{}
)

// Auth messages.
type (
	SessionReadyMsg struct {
		User *api.User
	}

	LoginResultMsg struct {
		OK         bool
		Unverified bool
		Email      string
		User       *api.User
	}

	RegisterResultMsg struct {
		OK    bool
		Email string
	}

	VerifyResultMsg struct {
		OK   bool
		User *api.User
	}

	ResendResultMsg struct {
		OK bool
	}

	LoggedOutMsg struct{}
)

// Data messages.
type (
	TemplatesLoadedMsg struct {
		Templates []api.Template
		FromCache bool
		Err       error
	}

	TemplateSavedMsg struct {
		Template api.Template
		Updated  bool
		Err      error
	}

	TemplateDeletedMsg struct {
		ID  string
		Err error
	}

	TemplateDuplicatedMsg struct {
		Template api.Template
		Err      error
	}

	SupportSubmittedMsg struct {
		OK  bool
		Err error
	}

	NewNotificationMsg struct {
		UnreadCount int
	}

	StatusMsg struct {
		Text    string
		IsError bool
	}
)
