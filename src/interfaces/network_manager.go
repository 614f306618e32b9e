package interfaces

// -----------------------------------------------------------------------------
// INetworkManager defines the contract for HTTP requests against vendor APIs.
// -----------------------------------------------------------------------------

type INetworkManager interface {

	// -----------------------------------------------------------------------------

	// Get performs a GET request to the specified URL with parameters.
	// Returns the response body as bytes or an error.
	Get(url string, params map[string]string) ([]byte, error)
}
