package static

// Fetcher implements config.DataFetcher over an in-memory byte slice.
type Fetcher struct {
	data []byte
}

// New creates a Fetcher serving a private copy of data.
func New(data []byte) *Fetcher {
	cached := make([]byte, len(data))
	copy(cached, data)

	return &Fetcher{data: cached}
}

// NewFetcher returns an Fx-friendly constructor for a Fetcher serving data.
func NewFetcher(data []byte) func() *Fetcher {
	return func() *Fetcher {
		return New(data)
	}
}

// Fetch returns a copy of the data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
