package call

import "fmt"

// InvalidAuction is returned when an auction violates a legality
// invariant (surfaced to the caller, not a programmer error).
type InvalidAuction struct {
	Reason string
}

func (e *InvalidAuction) Error() string {
	return fmt.Sprintf("invalid auction: %s", e.Reason)
}

// History is the ordered record of calls made in an auction, plus the
// dealer who made the first call.
type History struct {
	Dealer Position
	Calls  []Call
}

// CurrentTurn returns the position whose turn it is to call next.
func (h History) CurrentTurn() Position {
	return Position((int(h.Dealer) + len(h.Calls)) % 4)
}

// PositionOf returns the seat that made the call at index i.
func (h History) PositionOf(i int) Position {
	return Position((int(h.Dealer) + i) % 4)
}

// LastBid returns the most recent Bid call and its index, or ok=false if
// no bid has been made.
func (h History) LastBid() (Call, int, bool) {
	for i := len(h.Calls) - 1; i >= 0; i-- {
		if h.Calls[i].Kind == KindBid {
			return h.Calls[i], i, true
		}
	}
	return Call{}, -1, false
}

// LastNonPass returns the most recent call that was not a Pass, and its
// index, or ok=false if every call so far has been a pass.
func (h History) LastNonPass() (Call, int, bool) {
	for i := len(h.Calls) - 1; i >= 0; i-- {
		if h.Calls[i].Kind != KindPass {
			return h.Calls[i], i, true
		}
	}
	return Call{}, -1, false
}

// IsComplete reports whether the auction has ended: at least 4 calls
// with the last 3 all Pass, which also covers the
// trivial all-pass deal-out at exactly 4 calls.
func (h History) IsComplete() bool {
	n := len(h.Calls)
	if n < 4 {
		return false
	}
	for i := n - 3; i < n; i++ {
		if h.Calls[i].Kind != KindPass {
			return false
		}
	}
	return true
}

// IsLegal reports whether c is a legal next call given h:
//   - a bid must outrank the last bid;
//   - a double is legal only over an opposing bid with no intervening double;
//   - a redouble is legal only over the opponents' double of our bid.
func (h History) IsLegal(c Call) bool {
	if h.IsComplete() {
		return false
	}
	switch c.Kind {
	case KindPass:
		return true
	case KindBid:
		last, _, ok := h.LastBid()
		if !ok {
			return true
		}
		return c.Higher(last)
	case KindDouble:
		return h.canDouble()
	case KindRedouble:
		return h.canRedouble()
	default:
		return false
	}
}

// canDouble implements: legal only if the last non-pass call is a bid by
// the opposing partnership and no intervening double exists.
func (h History) canDouble() bool {
	last, idx, ok := h.LastNonPass()
	if !ok || last.Kind != KindBid {
		return false
	}
	bidder := h.PositionOf(idx)
	caller := h.CurrentTurn()
	return !bidder.SameSide(caller)
}

// canRedouble implements: legal only if the last non-pass call is the
// opponents' double of this partnership's bid.
func (h History) canRedouble() bool {
	last, idx, ok := h.LastNonPass()
	if !ok || last.Kind != KindDouble {
		return false
	}
	doubler := h.PositionOf(idx)
	caller := h.CurrentTurn()
	return !doubler.SameSide(caller)
}

// Append returns a new History with c appended, validating legality.
func (h History) Append(c Call) (History, error) {
	if !h.IsLegal(c) {
		return History{}, &InvalidAuction{Reason: fmt.Sprintf("%s is not legal after %v", c, h.Calls)}
	}
	next := History{Dealer: h.Dealer, Calls: append(append([]Call{}, h.Calls...), c)}
	return next, nil
}

// CallsBy returns, in order, the calls made by seat p.
func (h History) CallsBy(p Position) []Call {
	var out []Call
	for i, c := range h.Calls {
		if h.PositionOf(i) == p {
			out = append(out, c)
		}
	}
	return out
}

// WouldPassOut reports whether the auction would end (pass out) if the
// current seat passes right now: true after a bid or double followed by
// two passes (i.e. balancing seat), or after three opening passes.
func (h History) WouldPassOut() bool {
	trial, err := h.Append(Pass)
	if err != nil {
		return false
	}
	return trial.IsComplete()
}
