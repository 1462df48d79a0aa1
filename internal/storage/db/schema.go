package db

// number is both the primary key and the audio artifact filename stem.
// content uniqueness is enforced by the dedupe lookup inside the capture
// transaction rather than by a constraint; the index keeps that lookup fast.
const schema = `
CREATE TABLE IF NOT EXISTS recordings (
    number INTEGER PRIMARY KEY AUTOINCREMENT,
    content TEXT NOT NULL,
    date DATE NOT NULL,
    box_level INTEGER,
    next_review_date DATE,
    last_review_date DATE,
    remember INTEGER DEFAULT 0,
    forget INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_date ON recordings(date);
CREATE INDEX IF NOT EXISTS idx_content ON recordings(content);
CREATE INDEX IF NOT EXISTS idx_next_review_date ON recordings(next_review_date);
`
