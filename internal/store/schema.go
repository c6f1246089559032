package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
    id          TEXT PRIMARY KEY,
    at          TEXT NOT NULL,
    coins       INTEGER NOT NULL,
    note        TEXT NOT NULL DEFAULT '',
    price       TEXT,
    currency    TEXT,
    preset_id   TEXT NOT NULL DEFAULT '',
    color       TEXT NOT NULL DEFAULT '',
    icon        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS settings (
    key         TEXT PRIMARY KEY,
    value       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_at ON entries(at);
`
