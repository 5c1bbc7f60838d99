package client

import (
	"fmt"

	"github.com/dmitrijs2005/backoffice/internal/common"
)

// RemoteError describes a failed call to the resource API.
type RemoteError struct {
	Op      string // findAll, save, ...
	Method  string
	URL     string
	Status  int // 0 when no response was received
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %s", e.Op, e.URL, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Op, e.URL, e.Status, e.Message)
}

// Unwrap exposes the sentinel errors matching this failure.
func (e *RemoteError) Unwrap() []error {
	errs := []error{}
	if e.Status == 0 {
		errs = append(errs, common.ErrUnavailable)
	} else {
		errs = append(errs, common.ErrRemote)
	}
	if e.Status == 404 {
		errs = append(errs, common.ErrorNotFound)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
