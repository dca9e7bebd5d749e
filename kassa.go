// Package kassa is a small double-entry-adjacent bookkeeping tool:
// debit and credit categories, bank accounts, and statement imports
// over sqlite, with editable tables in a terminal UI.
package kassa
