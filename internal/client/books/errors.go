package books

import "errors"

// ErrDuplicateTitle книга с таким title уже есть локально или на сервере
var ErrDuplicateTitle = errors.New("book with this title already exists")
