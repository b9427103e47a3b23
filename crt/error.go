package crt

// NotFound - Custom error to inform that no entry was found for a key
type NotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E NotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// TableFull - Custom error to inform that the table is full and can't take more entries
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// RebuildFailed - Custom error to inform that repeated cuckoo rebuilds did not converge
type RebuildFailed struct {
	msg string
}

// Error - Used to notify that repeated rebuilds did not converge
func (E RebuildFailed) Error() string {
	if E.msg == "" {
		return "cuckoo rebuild did not converge"
	}
	return E.msg
}
