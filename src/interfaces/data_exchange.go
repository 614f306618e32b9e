package interfaces

import "solar-observer/src/models"

// -----------------------------------------------------------------------------
// IDataExchanger defining the interface for sharing data with external systems (Server/Push).
// -----------------------------------------------------------------------------

type IDataExchanger interface {
	// -----------------------------------------------------------------------------
	// Broadcast pushes a snapshot to external listeners and updates state.
	Broadcast(data *models.MLatestData)

	// -----------------------------------------------------------------------------
	// UpdateSnapshot replaces the internal state without broadcasting
	UpdateSnapshot(data *models.MLatestData)

	// -----------------------------------------------------------------------------
	// Start the server
	Start() error

	// -----------------------------------------------------------------------------
	// Stop the server gracefully
	Stop() error
}
