package tui

import (
	"fmt"
	"strings"

	"contactlog/internal/client/apiclient"
	"contactlog/internal/client/form"

	"github.com/pkg/errors"
)

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeError
)

// notice is the single status line under the panes.
type notice struct {
	kind noticeKind
	text string
}

func info(format string, args ...any) notice {
	return notice{kind: noticeInfo, text: fmt.Sprintf(format, args...)}
}

// failure turns any error from an action into a line the user can read.
// Nothing an action returns ever ends the program.
func failure(action string, err error) notice {
	var (
		draftErr     *form.DraftError
		apiErr       *apiclient.APIError
		transportErr *apiclient.TransportError
	)

	var text string
	switch {
	case errors.As(err, &draftErr):
		text = "check " + strings.Join(draftErr.Fields.Fields(), ", ")
	case errors.Is(err, form.ErrContactGone):
		text = "the contact was removed in the meantime, reload with r"
	case errors.As(err, &apiErr):
		text = apiErr.Message
		if apiErr.RequestID != "" {
			text += " (request " + apiErr.RequestID + ")"
		}
	case errors.As(err, &transportErr):
		text = "server unreachable: " + transportErr.Err.Error()
	default:
		text = err.Error()
	}

	return notice{kind: noticeError, text: action + " failed: " + text}
}

func (n notice) View() string {
	if n.text == "" {
		return ""
	}
	if n.kind == noticeError {
		return errorNotice.Render(n.text)
	}

	return infoNotice.Render(n.text)
}
