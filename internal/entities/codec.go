package entities

import (
	"bytes"
	"encoding/gob"
)

// orderCodecVersion prefixes cached orders. Bump it whenever Order or
// OrderLine change shape so stale entries read as misses.
const orderCodecVersion byte = 1

// Marshal encodes the order for the read cache.
func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(orderCodecVersion)
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	if len(data) == 0 || data[0] != orderCodecVersion {
		return ErrInvalidOrder
	}
	if err := gob.NewDecoder(bytes.NewReader(data[1:])).Decode(o); err != nil {
		return ErrInvalidOrder
	}
	return nil
}
