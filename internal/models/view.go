package models

// MovementRow is one rendered line of the movements list.
type MovementRow struct {
	Index  int    // 1-based position in the original movement order
	Type   string // "deposit" or "withdrawal"
	Date   string // relative or calendar date label
	Amount string // locale/currency formatted amount
}

// AccountView is the fully formatted dashboard state handed to the
// render sink after every state-changing operation.
type AccountView struct {
	Welcome     string        // greeting with the owner's first name
	Now         string        // current date/time per the account locale
	Movements   []MovementRow // newest first unless Sorted
	Balance     string
	SumIn       string
	SumOut      string
	SumInterest string
	Sorted      bool
	Countdown   string // remaining session time as mm:ss
}
