package playlist

import "github.com/osa030/gramaria/internal/domain/track"

const (
	audioBase = "https://github.com/caidenfredrickson2022/ImageHosting/raw/refs/heads/main/"
	coverBase = "https://github.com/caidenfredrickson2022/ImageHosting/blob/main/"
)

var gramaria = MustNew("Music of Gramaria", []track.Track{
	{Title: "Whispers of the Ancients", Source: audioBase + "celtic-fantasy-357901.mp3", CoverArt: coverBase + "whispers-of-ancients.png?raw=true"},
	{Title: "Acoustic Lore", Source: audioBase + "celtic-fantasy-acoustic-378624.mp3", CoverArt: coverBase + "acoutisc-lore.png?raw=true"},
	{Title: "Lumina's Light", Source: audioBase + "fantasy-music-lumina-143991.mp3", CoverArt: coverBase + "luminas-light.png?raw=true"},
	{Title: "Dance of the Isles", Source: audioBase + "medieval-irish-celtic-ireland-music-311693.mp3", CoverArt: coverBase + "dance-of-isles.png?raw=true"},
	{Title: "Forest Folk's Hymn", Source: audioBase + "nature-celtic-folk-instrumental-415815.mp3", CoverArt: coverBase + "forest-folk-hymn.png?raw=true"},
	{Title: "Journey Through the Glen", Source: audioBase + "through-the-glen-celtic-music-342771.mp3", CoverArt: coverBase + "journey-through-glen.png?raw=true"},
})

// Gramaria returns the compiled-in "Music of Gramaria" playlist.
func Gramaria() *Playlist {
	return gramaria
}
