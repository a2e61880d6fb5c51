package brief

import "time"

// Brief is a structured business context submitted by a caller for a chosen
// module. Created once per submission.
type Brief struct {
	ID         string    `json:"id"`
	Module     string    `json:"module"`
	ModuleName string    `json:"moduleName"`
	Outputs    []string  `json:"outputs"`
	Context    string    `json:"context"`
	Goals      string    `json:"goals"`
	Sources    []string  `json:"sources"`
	CreatedAt  time.Time `json:"createdAt"`
}
