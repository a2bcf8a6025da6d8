package subsonic

// Kind tags an entity with what it represents.
type Kind string

const (
	KindSong     Kind = "song"
	KindAlbum    Kind = "album"
	KindArtist   Kind = "artist"
	KindPlaylist Kind = "playlist"
)

// CategoryAny is a search category, not an entity kind: it asks Search for
// all categories at once. No entity ever carries it.
const CategoryAny Kind = "any"

// Entity is one normalized record: the raw protocol attributes of whatever
// XML element it came from, plus the kind tag. Entities are plain values,
// created per call and never mutated afterwards.
type Entity struct {
	Kind   Kind
	Fields map[string]string
}

// Get returns a raw attribute value, or "" when absent.
func (e Entity) Get(key string) string {
	return e.Fields[key]
}

// ID returns the entity's server-side identifier.
func (e Entity) ID() string {
	return e.Fields["id"]
}

// Name returns the display name: the name attribute where present, the title
// otherwise (songs carry title, not name).
func (e Entity) Name() string {
	if name := e.Fields["name"]; name != "" {
		return name
	}
	return e.Fields["title"]
}

// StreamURL returns the credential-embedded stream URL of a song entity.
// Empty for every other kind.
func (e Entity) StreamURL() string {
	return e.Fields["streamUrl"]
}

// normalizeSong turns a raw attribute map into a song entity, deriving the
// streamUrl field from the song's id. The service never supplies streamUrl
// itself.
func (c *Client) normalizeSong(attrs map[string]string) (Entity, error) {
	id := attrs["id"]
	if id == "" {
		return Entity{}, &ArgumentError{Reason: "song has no id"}
	}
	fields := make(map[string]string, len(attrs)+1)
	for k, v := range attrs {
		fields[k] = v
	}
	fields["streamUrl"] = c.StreamURL(id)
	return Entity{Kind: KindSong, Fields: fields}, nil
}

// normalizeGeneric tags a raw attribute map with a kind, nothing more.
func normalizeGeneric(attrs map[string]string, kind Kind) Entity {
	fields := make(map[string]string, len(attrs))
	for k, v := range attrs {
		fields[k] = v
	}
	return Entity{Kind: kind, Fields: fields}
}
