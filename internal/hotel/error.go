package hotel

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateRoomNumber = errors.New("room number already registered")
	ErrGuestNotFound       = errors.New("guest not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomUnavailable     = errors.New("room is already occupied")
	ErrRoomNotOccupied     = errors.New("room is not occupied")
	ErrInvalidPeriod       = errors.New("check-out date is before check-in date")
	ErrMalformedRecord     = errors.New("malformed record")
	ErrNextID              = errors.New("get next id from generator")
	ErrRecordNotFound      = errors.New("record not found")
)

type InputError struct {
	fields map[string][]string
}

func newInputError() *InputError {
	return &InputError{
		fields: make(map[string][]string),
	}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) addError(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

func (ie *InputError) Error() string {
	return fmt.Sprintf("%+v", ie.fields)
}

func (ie *InputError) Fields() map[string][]string {
	return ie.fields
}
