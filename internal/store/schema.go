package store

const Schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS subscriptions (
	subscription_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	price REAL NOT NULL,
	duration_days INTEGER NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS user_subscriptions (
	user_id INTEGER NOT NULL,
	subscription_id INTEGER NOT NULL,
	start_date DATETIME NOT NULL,
	end_date DATETIME NOT NULL,
	PRIMARY KEY (user_id, subscription_id),
	FOREIGN KEY (user_id) REFERENCES users(user_id),
	FOREIGN KEY (subscription_id) REFERENCES subscriptions(subscription_id)
);

CREATE TABLE IF NOT EXISTS authors (
	author_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	bio TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS narrators (
	narrator_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	bio TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS audiobooks (
	audiobook_id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	author_id INTEGER NOT NULL,
	narrator_id INTEGER,
	duration INTEGER NOT NULL,
	description TEXT,
	release_date DATETIME,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (author_id) REFERENCES authors(author_id),
	FOREIGN KEY (narrator_id) REFERENCES narrators(narrator_id)
);

CREATE INDEX IF NOT EXISTS idx_audiobooks_author_id ON audiobooks(author_id);
CREATE INDEX IF NOT EXISTS idx_audiobooks_narrator_id ON audiobooks(narrator_id);

CREATE TABLE IF NOT EXISTS chapters (
	chapter_id INTEGER PRIMARY KEY AUTOINCREMENT,
	audiobook_id INTEGER NOT NULL,
	title TEXT,
	duration INTEGER NOT NULL,
	position INTEGER NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (audiobook_id) REFERENCES audiobooks(audiobook_id)
);

CREATE INDEX IF NOT EXISTS idx_chapters_audiobook_id ON chapters(audiobook_id);

CREATE TABLE IF NOT EXISTS categories (
	category_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS audiobook_categories (
	audiobook_id INTEGER NOT NULL,
	category_id INTEGER NOT NULL,
	PRIMARY KEY (audiobook_id, category_id),
	FOREIGN KEY (audiobook_id) REFERENCES audiobooks(audiobook_id),
	FOREIGN KEY (category_id) REFERENCES categories(category_id)
);

CREATE TABLE IF NOT EXISTS listening_histories (
	history_id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	audiobook_id INTEGER NOT NULL,
	started_at DATETIME NOT NULL,
	finished_at DATETIME,
	FOREIGN KEY (user_id) REFERENCES users(user_id),
	FOREIGN KEY (audiobook_id) REFERENCES audiobooks(audiobook_id)
);

CREATE INDEX IF NOT EXISTS idx_listening_histories_user_id ON listening_histories(user_id);
CREATE INDEX IF NOT EXISTS idx_listening_histories_audiobook_id ON listening_histories(audiobook_id);

CREATE TABLE IF NOT EXISTS bookmarks (
	bookmark_id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	audiobook_id INTEGER NOT NULL,
	chapter_id INTEGER,
	position INTEGER NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users(user_id),
	FOREIGN KEY (audiobook_id) REFERENCES audiobooks(audiobook_id),
	FOREIGN KEY (chapter_id) REFERENCES chapters(chapter_id)
);

CREATE INDEX IF NOT EXISTS idx_bookmarks_user_id ON bookmarks(user_id);

CREATE TABLE IF NOT EXISTS reviews (
	review_id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	audiobook_id INTEGER NOT NULL,
	review_text TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users(user_id),
	FOREIGN KEY (audiobook_id) REFERENCES audiobooks(audiobook_id)
);

CREATE INDEX IF NOT EXISTS idx_reviews_audiobook_id ON reviews(audiobook_id);

CREATE TABLE IF NOT EXISTS ratings (
	rating_id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	audiobook_id INTEGER NOT NULL,
	rating INTEGER NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users(user_id),
	FOREIGN KEY (audiobook_id) REFERENCES audiobooks(audiobook_id)
);

CREATE INDEX IF NOT EXISTS idx_ratings_audiobook_id ON ratings(audiobook_id);

CREATE TABLE IF NOT EXISTS purchases (
	purchase_id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	audiobook_id INTEGER NOT NULL,
	purchase_date DATETIME NOT NULL,
	FOREIGN KEY (user_id) REFERENCES users(user_id),
	FOREIGN KEY (audiobook_id) REFERENCES audiobooks(audiobook_id)
);

CREATE INDEX IF NOT EXISTS idx_purchases_user_id ON purchases(user_id);
`
