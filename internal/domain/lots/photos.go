package lots

// MaxPhotos caps how many photos of the synced set get persisted on a lot.
const MaxPhotos = 5

type PhotoSet struct {
	Photos []string
	Cover  string
}

// SyncCoverPhotoSet reconciles a lot's photo list against the photos of its
// current member articles: photos still belonging to a member keep their
// relative order, photos newly introduced by members are appended after them,
// and photos of removed articles are dropped. The cover survives if it is
// still in the set, otherwise it falls back to the first photo (empty when
// the set is empty).
func SyncCoverPhotoSet(current []string, cover string, memberPhotos []string) PhotoSet {
	member := make(map[string]struct{}, len(memberPhotos))
	for _, url := range memberPhotos {
		member[url] = struct{}{}
	}

	seen := make(map[string]struct{}, len(memberPhotos))
	photos := make([]string, 0, len(memberPhotos))
	for _, url := range current {
		if _, ok := member[url]; !ok {
			continue
		}
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		photos = append(photos, url)
	}
	for _, url := range memberPhotos {
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		photos = append(photos, url)
	}

	next := PhotoSet{Photos: photos}
	if cover != "" {
		if _, ok := seen[cover]; ok {
			next.Cover = cover
			return next
		}
	}
	if len(photos) > 0 {
		next.Cover = photos[0]
	}
	return next
}

// CapPhotos trims a synced photo list to the persistable maximum.
func CapPhotos(photos []string) []string {
	if len(photos) > MaxPhotos {
		return photos[:MaxPhotos]
	}
	return photos
}
