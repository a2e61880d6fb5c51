package activation

import "time"

// Mode records how an activation was obtained.
const (
	ModeDemo   = "demo"
	ModePayPal = "paypal"
)

// Activation is the synthetic credential handed to a buyer after a captured
// payment or an explicit demo request. Never mutated once issued.
type Activation struct {
	Token      string    `json:"token"`
	OrderID    string    `json:"orderId"`
	ModuleID   string    `json:"moduleId"`
	ModuleName string    `json:"moduleName"`
	ExpiresAt  time.Time `json:"expiresAt"`
	NextSteps  []string  `json:"nextSteps"`
	Mode       string    `json:"mode"`
	IssuedAt   time.Time `json:"issuedAt"`
}
