// Package identifier implements the board-identifier codec: the
// bijective envelope packing dealer, deal, and auction into the opaque
// string the engine facade accepts. This sits outside the bidding
// engine's own core (the board identifier is an external collaborator's
// concern) but is the engine's only public input format, so it ships as
// a small, self-contained packer, modeled on internal/gameid's
// fixed-width encode/decode/validate shape rather than its UUIDv7
// scheme.
package identifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eseidel/yarborough/internal/call"
	"github.com/eseidel/yarborough/internal/card"
)

// InvalidIdentifier reports a malformed board identifier. Always
// surfaced to the caller, never retried.
type InvalidIdentifier struct {
	Reason string
}

func (e *InvalidIdentifier) Error() string {
	return fmt.Sprintf("invalid identifier: %s", e.Reason)
}

// Identifier is the parsed envelope: board number, derived dealer and
// vulnerability, the deal (one 13-card Hand per seat), and the auction
// replayed so far.
type Identifier struct {
	BoardNumber   int
	Dealer        call.Position
	Vulnerability call.Vulnerability
	Deal          [4]card.Hand
	History       call.History
}

// Parse decodes a board identifier of the form
// "<board-number>-<26-hex-chars>[:<calls-csv>]".
func Parse(s string) (Identifier, error) {
	boardPart, rest, ok := strings.Cut(s, "-")
	if !ok {
		return Identifier{}, &InvalidIdentifier{Reason: fmt.Sprintf("missing '-' separator in %q", s)}
	}
	board, err := strconv.Atoi(boardPart)
	if err != nil {
		return Identifier{}, &InvalidIdentifier{Reason: fmt.Sprintf("board number %q is not an integer", boardPart)}
	}

	dealer, err := call.DealerForBoard(board)
	if err != nil {
		return Identifier{}, &InvalidIdentifier{Reason: err.Error()}
	}
	vuln, err := call.VulnerabilityForBoard(board)
	if err != nil {
		return Identifier{}, &InvalidIdentifier{Reason: err.Error()}
	}

	hexPart, callsPart, hasCalls := strings.Cut(rest, ":")
	deal, err := decodeDeal(hexPart)
	if err != nil {
		return Identifier{}, &InvalidIdentifier{Reason: err.Error()}
	}

	var calls []call.Call
	if hasCalls {
		calls, err = call.ParseTokens(callsPart)
		if err != nil {
			return Identifier{}, &InvalidIdentifier{Reason: err.Error()}
		}
	}

	h := call.History{Dealer: dealer}
	for _, c := range calls {
		h, err = h.Append(c)
		if err != nil {
			return Identifier{}, err
		}
	}

	return Identifier{
		BoardNumber:   board,
		Dealer:        dealer,
		Vulnerability: vuln,
		Deal:          deal,
		History:       h,
	}, nil
}

// Format is the inverse of Parse: it renders an Identifier back to its
// canonical wire form (lowercase hex deal digits, uppercase call tokens).
func Format(id Identifier) (string, error) {
	hex, err := encodeDeal(id.Deal)
	if err != nil {
		return "", err
	}
	s := fmt.Sprintf("%d-%s", id.BoardNumber, hex)
	if len(id.History.Calls) > 0 {
		s += ":" + call.FormatTokens(id.History.Calls)
	}
	return s, nil
}

// decodeDeal unpacks 26 hex characters into the four 13-card hands they
// encode. Each hex digit packs two cards' owning seat (2 bits each,
// high*4+low); card index 2i/2i+1 within the 52-card universe (suit*13+
// rank) is encoded by hex digit i.
func decodeDeal(hex string) ([4]card.Hand, error) {
	if len(hex) != 26 {
		return [4]card.Hand{}, fmt.Errorf("deal hex must be 26 characters, got %d", len(hex))
	}
	var positionOf [52]call.Position
	for i := 0; i < 26; i++ {
		d, err := strconv.ParseUint(hex[i:i+1], 16, 8)
		if err != nil {
			return [4]card.Hand{}, fmt.Errorf("deal hex: bad digit %q at offset %d", hex[i:i+1], i)
		}
		positionOf[2*i] = call.Position(d / 4)
		positionOf[2*i+1] = call.Position(d % 4)
	}

	var cardsByPos [4][]card.Card
	for id := 0; id < 52; id++ {
		c, err := card.CardFromID(id)
		if err != nil {
			return [4]card.Hand{}, err
		}
		p := positionOf[id]
		cardsByPos[p] = append(cardsByPos[p], c)
	}

	var hands [4]card.Hand
	for p := 0; p < 4; p++ {
		h, err := card.NewHand(cardsByPos[p])
		if err != nil {
			return [4]card.Hand{}, fmt.Errorf("seat %s: %w", call.Position(p), err)
		}
		hands[p] = h
	}
	return hands, nil
}

// encodeDeal is the inverse of decodeDeal.
func encodeDeal(deal [4]card.Hand) (string, error) {
	var positionOf [52]call.Position
	var seen [52]bool
	for p := 0; p < 4; p++ {
		for _, c := range deal[p].Cards() {
			id := c.ID()
			if seen[id] {
				return "", fmt.Errorf("card %s assigned to more than one seat", c)
			}
			seen[id] = true
			positionOf[id] = call.Position(p)
		}
	}
	for id, ok := range seen {
		if !ok {
			c, _ := card.CardFromID(id)
			return "", fmt.Errorf("card %s not assigned to any seat", c)
		}
	}

	var b strings.Builder
	for i := 0; i < 26; i++ {
		high := int(positionOf[2*i])
		low := int(positionOf[2*i+1])
		fmt.Fprintf(&b, "%x", high*4+low)
	}
	return b.String(), nil
}
