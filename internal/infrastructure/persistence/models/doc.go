// Package models contains the GORM database models for the persistence layer.
// They are kept separate from the domain entities and converted with
// ToDomain/FromDomain so the storage schema can evolve independently.
package models
