package chain

// TxStatus mirrors the access-node transaction status stream. Negative
// values are error codes.
type TxStatus int

const (
	TxStatusUnknown TxStatus = iota
	TxStatusPending
	TxStatusFinalized
	TxStatusExecuted
	TxStatusSealed
	TxStatusExpired
)

func (s TxStatus) String() string {
	if s < 0 {
		return "Error"
	}
	switch s {
	case TxStatusUnknown:
		return "Unknown"
	case TxStatusPending:
		return "Pending"
	case TxStatusFinalized:
		return "Finalized"
	case TxStatusExecuted:
		return "Executed"
	case TxStatusSealed:
		return "Sealed"
	case TxStatusExpired:
		return "Expired"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the status stream will produce no further updates.
func (s TxStatus) Terminal() bool {
	return s < 0 || s >= TxStatusSealed
}
