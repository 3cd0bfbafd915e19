package redisx

import "time"

const (
	// order:{order_id} -> gob encoded order
	KeyOrder = "order:%s"

	opTimeout = 2 * time.Second
)
