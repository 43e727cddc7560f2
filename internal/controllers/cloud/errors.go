package cloud

import "errors"

var (
	errLockTimeout    = errors.New("the store is busy, try again later")
	errPayloadInvalid = errors.New("the posted ledger contains invalid or un-parseable data")
)
