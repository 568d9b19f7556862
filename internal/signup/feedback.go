package signup

import "time"

// Screen copy shown to the user.
const (
	MsgServerIssue     = "Algo ha sucedido en el servidor"
	TitleSuccess       = "Éxito"
	MsgAccountCreated  = "¡Cuenta creada exitosamente!"
	TitleError         = "Error"
	MsgCreateFailed    = "Hubo un problema al crear la cuenta"
	MsgInvalidEmail    = "El correo electrónico proporcionado no es válido"
	MsgEmailRegistered = "Su correo electrónico ya está registrado, inicie sesión"
)

// HomeRoute is where a successful sign-up navigates to.
const HomeRoute = "/home"

// Toast defaults.
const (
	DefaultToastDuration = 2500 * time.Millisecond
	PositionMiddle       = "middle"
)

// ButtonOK is the single acknowledgement button of every alert.
const ButtonOK = "OK"

// Toast is a transient notification.
type Toast struct {
	Message  string        `json:"message"`
	Duration time.Duration `json:"-"`
	Position string        `json:"position"`
}

// Alert is a titled dialog dismissed with one of its buttons.
type Alert struct {
	Header  string   `json:"header"`
	Message string   `json:"message"`
	Buttons []string `json:"buttons"`
}

// Presenter renders the side effects of a submission.
// Calls arrive in order from the goroutine running Submit.
type Presenter interface {
	ShowLoading()
	DismissLoading()
	Toast(Toast)
	Alert(Alert)
	ResetForm()
	Navigate(route string)
}
