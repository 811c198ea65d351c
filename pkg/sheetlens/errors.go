package sheetlens

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// InspectionError reports a failure while inspecting one sheet.
// Inspect logs these and continues with the remaining sheets.
type InspectionError struct {
	SheetName string
	Err       error
}

func (e *InspectionError) Error() string {
	return fmt.Sprintf("inspection error in sheet %q: %v", e.SheetName, e.Err)
}

func (e *InspectionError) Unwrap() error {
	return e.Err
}
