package department

type Department struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	HeadID *string `json:"headId,omitempty"`
}
