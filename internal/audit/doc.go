// Package audit keeps an append-only JSONL log of registration runs.
package audit
