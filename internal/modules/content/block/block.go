package block

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Kind is the closed set of block types a post may contain.
type Kind string

const (
	KindAudio       Kind = "audio"
	KindBeforeAfter Kind = "beforeAfter"
	KindFile        Kind = "file"
	KindFlipCard    Kind = "flipCard"
	KindPoll        Kind = "poll"
	KindQuiz        Kind = "quiz"
	KindQuote       Kind = "quote"
	KindReview      Kind = "review"
	KindSocial      Kind = "social"
	KindVersus      Kind = "versus"
)

// Valid reports whether k is a known block kind.
func (k Kind) Valid() bool {
	switch k {
	case KindAudio, KindBeforeAfter, KindFile, KindFlipCard, KindPoll,
		KindQuiz, KindQuote, KindReview, KindSocial, KindVersus:
		return true
	}
	return false
}

// Data is the kind-specific payload carried by a block. Exactly one concrete
// payload type corresponds to each kind; kinds whose content fits entirely in
// the common block fields (audio, file, quote) carry no payload.
type Data interface {
	blockKind() Kind
}

// Block is one element of a post's ordered block sequence. Position in the
// sequence is authoritative for order; OrderNumber is a cosmetic override.
type Block struct {
	ID          string `json:"id"`
	Kind        Kind   `json:"kind"`
	OrderNumber *int   `json:"orderNumber,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"` // rich text HTML
	Source      string `json:"source,omitempty"`
	MediaURL    string `json:"mediaUrl,omitempty"`
	Data        Data   `json:"data,omitempty"`
}

// List is a post's ordered block sequence.
type List []Block

// New creates a block of the given kind with a generated id and
// kind-appropriate default payload (polls and versus duels seed their options).
func New(kind Kind) Block {
	b := Block{ID: uuid.New().String(), Kind: kind}
	b.Data = defaultData(kind)
	return b
}

// UnmarshalJSON decodes the variant payload into the concrete type selected
// by the block's kind. Unknown kinds are rejected.
func (b *Block) UnmarshalJSON(raw []byte) error {
	type alias Block
	aux := struct {
		*alias
		Data json.RawMessage `json:"data"`
	}{alias: (*alias)(b)}
	if err := json.Unmarshal(raw, &aux); err != nil {
		return err
	}
	if !b.Kind.Valid() {
		return fmt.Errorf("unknown block kind %q", b.Kind)
	}

	payload := defaultData(b.Kind)
	if payload != nil && len(aux.Data) > 0 && string(aux.Data) != "null" {
		if err := json.Unmarshal(aux.Data, payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", b.Kind, err)
		}
	}
	b.Data = payload
	return nil
}

// DecodePayload decodes raw JSON into the payload type selected by kind.
// Kinds without a payload type return nil.
func DecodePayload(kind Kind, raw []byte) (Data, error) {
	payload := defaultData(kind)
	if payload == nil {
		return nil, nil
	}
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, payload); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", kind, err)
		}
	}
	return payload, nil
}

// Payload accessors. Each returns the typed payload when the block carries
// that kind, nil otherwise.

func (b *Block) BeforeAfter() *BeforeAfterData { d, _ := b.Data.(*BeforeAfterData); return d }
func (b *Block) FlipCard() *FlipCardData       { d, _ := b.Data.(*FlipCardData); return d }
func (b *Block) Poll() *PollData               { d, _ := b.Data.(*PollData); return d }
func (b *Block) Quiz() *QuizData               { d, _ := b.Data.(*QuizData); return d }
func (b *Block) Review() *ReviewData           { d, _ := b.Data.(*ReviewData); return d }
func (b *Block) Social() *SocialData           { d, _ := b.Data.(*SocialData); return d }
func (b *Block) Versus() *VersusData           { d, _ := b.Data.(*VersusData); return d }
