package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/umsebenzi/internal/apiclient"
	"github.com/valter-silva-au/umsebenzi/internal/render"
)

// ErrRejected is returned when the service refuses a destructive request.
var ErrRejected = errors.New("request rejected by the server")

var (
	errAPINotInitialized    = errors.New("api client not initialized")
	errConfigNotInitialized = errors.New("configuration manager not initialized")
	errPromptNotInitialized = errors.New("prompter not initialized")
)

// report prints the field errors of a rejected request. Only destructive
// operations turn a rejection into a failing exit; everything else returns
// normally after printing. Fatal outcomes are passed through.
func report(cmd *cobra.Command, err error, destructive bool) error {
	if err == nil || apiclient.IsFatal(err) {
		return err
	}
	var ve *apiclient.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	if ve.Payload != nil {
		render.FieldErrors(cmd.ErrOrStderr(), ve.Payload.FieldErrors())
	}
	if destructive {
		return fmt.Errorf("%w (status %d)", ErrRejected, ve.StatusCode)
	}
	return nil
}

func requireAPI() error {
	if API == nil {
		return errAPINotInitialized
	}
	return nil
}

func requireInteractive() error {
	if err := requireAPI(); err != nil {
		return err
	}
	if Prompter == nil || Capturer == nil {
		return errPromptNotInitialized
	}
	return nil
}
