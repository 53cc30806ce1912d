// config_features.go - Feature-Flags und Ausgabe-Einstellungen
//
// Dieses Modul enthaelt:
// - Feature-Flags der Reduktions-Engine
// - Defaults fuer die Array-Ausgabe (ml.Dump)
package envconfig

// =============================================================================
// Feature-Flags
// =============================================================================

var (
	// StrictWalkers prueft nach jeder Achsen-Reduktion, dass beide
	// Koordinaten-Walker gemeinsam erschoepft sind
	StrictWalkers = BoolWithDefault("NDREDUCE_STRICT_WALKERS")
)

// =============================================================================
// Ausgabe-Einstellungen
// =============================================================================

var (
	// PrintThreshold: bis zu dieser Elementanzahl wird ein Array vollstaendig ausgegeben
	// Konfigurierbar via NDREDUCE_PRINT_THRESHOLD
	PrintThreshold = Uint("NDREDUCE_PRINT_THRESHOLD", 1000)

	// EdgeItems: Anzahl Elemente am Anfang/Ende jeder Dimension bei gekuerzter Ausgabe
	// Konfigurierbar via NDREDUCE_EDGE_ITEMS
	EdgeItems = Uint("NDREDUCE_EDGE_ITEMS", 3)

	// Precision: Nachkommastellen fuer Gleitkomma-Werte
	// Konfigurierbar via NDREDUCE_PRECISION
	Precision = Uint("NDREDUCE_PRECISION", 4)
)
