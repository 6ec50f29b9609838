package dto

import "time"

// timeLayout is the wire format for timestamps in responses.
const timeLayout = time.RFC3339
