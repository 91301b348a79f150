package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrConversationNotFound = fmt.Errorf("conversation not found")
	ErrMessageNotFound      = fmt.Errorf("message not found")
	ErrUnknownConversation  = fmt.Errorf("no conversation for status update")
	ErrMalformedEvent       = fmt.Errorf("malformed conversation event")
	ErrInvalidMessage       = fmt.Errorf("invalid archived message")
	ErrUnknownStatus        = fmt.Errorf("unknown message status")
	ErrConflictingCursor    = fmt.Errorf("only one of index, after or before may be set")
	ErrInvalidQuery         = fmt.Errorf("invalid history query")
	ErrNoAuthority          = fmt.Errorf("no authoritative node known")
	ErrNotAuthoritative     = fmt.Errorf("this node is not authoritative")
	ErrIneligible           = fmt.Errorf("participants are not archived")
)

// MapToGRPCError translates domain errors into gRPC status errors.
// Errors that already carry a status are returned unchanged.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, ErrConversationNotFound), errors.Is(err, ErrMessageNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrMalformedEvent), errors.Is(err, ErrInvalidMessage),
		errors.Is(err, ErrUnknownStatus), errors.Is(err, ErrConflictingCursor),
		errors.Is(err, ErrInvalidQuery):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrNotAuthoritative), errors.Is(err, ErrNoAuthority):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// FromGRPCError is the reverse of MapToGRPCError for the codes the cluster client cares about.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrConversationNotFound, st.Message())
	case codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrNotAuthoritative, st.Message())
	default:
		return err
	}
}
