package repository

// Schema creates the layout tables. Items are removed with their layout.
const Schema = `
CREATE TABLE IF NOT EXISTS layouts (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    width       REAL NOT NULL CHECK(width > 0),
    depth       REAL NOT NULL CHECK(depth > 0),
    height      REAL NOT NULL CHECK(height > 0),
    created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS layout_items (
    id            TEXT PRIMARY KEY,
    layout_id     TEXT NOT NULL REFERENCES layouts(id) ON DELETE CASCADE,
    furniture_id  TEXT NOT NULL,
    x             REAL NOT NULL,
    y             REAL NOT NULL,
    z             REAL NOT NULL,
    rotation      REAL NOT NULL DEFAULT 0,
    created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_layout_items_layout ON layout_items(layout_id);
`
