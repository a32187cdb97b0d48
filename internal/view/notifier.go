package view

import "github.com/labstack/echo/v4"

// Notifier is the user-notification capability handlers depend on instead
// of writing flashes directly, so tests can swap in a double.
type Notifier interface {
	// Notify surfaces a success confirmation to the user.
	Notify(c echo.Context, message string)
	// NotifyError surfaces a failure to the user.
	NotifyError(c echo.Context, message string)
	// Confirm asks the user to approve a destructive action. The flash
	// implementation grants it unconditionally: the browser-side
	// hx-confirm prompt has already run by the time the request arrives.
	Confirm(c echo.Context, message string) bool
}

// FlashNotifier implements Notifier over session flash messages.
type FlashNotifier struct{}

// NewFlashNotifier creates a FlashNotifier.
func NewFlashNotifier() *FlashNotifier {
	return &FlashNotifier{}
}

func (FlashNotifier) Notify(c echo.Context, message string) {
	SetFlashSuccess(c, message)
}

func (FlashNotifier) NotifyError(c echo.Context, message string) {
	SetFlashError(c, message)
}

func (FlashNotifier) Confirm(c echo.Context, message string) bool {
	return true
}
