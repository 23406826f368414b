package availability

import "errors"

// ErrInternal возвращается, когда хранилище не ответило
var ErrInternal = errors.New("availability: internal error")
