// config.go - Haupt-Konfigurationsfunktionen fuer ndreduce
//
// Dieses Modul enthaelt:
// - LogLevel: Gibt Log-Level zurueck (NDREDUCE_DEBUG)
// - DefaultDType: Element-Typ fuer eingelesene Daten (NDREDUCE_DEFAULT_DTYPE)
// - Var: Liest eine Environment-Variable
//
// Weitere Konfigurationen sind ausgelagert:
// - config_features.go: Feature-Flags und Ausgabe-Einstellungen
// - config_utils.go: Utility-Funktionen und AsMap/Values
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via NDREDUCE_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("NDREDUCE_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// DefaultDType gibt den Element-Typ fuer eingelesene Werte zurueck
// Konfigurierbar via NDREDUCE_DEFAULT_DTYPE
// Default: float64
func DefaultDType() string {
	if s := Var("NDREDUCE_DEFAULT_DTYPE"); s != "" {
		return strings.ToLower(s)
	}

	return "float64"
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
