// Package domain contains the core business entities and errors for the
// course and document recommendation system. It has no dependencies on
// adapters or infrastructure.
package domain
