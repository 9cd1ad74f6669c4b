package history

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_info (
    version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS runs (
    id          TEXT PRIMARY KEY,
    path        TEXT NOT NULL,
    started_at  TEXT NOT NULL,
    finished_at TEXT,
    group_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS run_groups (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id        TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    group_key     TEXT NOT NULL,
    clip_count    INTEGER NOT NULL,
    command       TEXT,
    output        TEXT,
    status        TEXT NOT NULL,
    error_message TEXT,
    created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_run_groups_run_id ON run_groups(run_id);
`
