package page

// Element ids of the widget document.
const (
	UserTemplateID  = "searchResultUserTemplate"
	TrackTemplateID = "searchResultTrackTemplate"
	SearchFormID    = "searchForm"
	ResultsID       = "results"
	ArtistTracksID  = "artistTracks"
	ArtistPageID    = "artistPage"
	ArtistImageID   = "artistPageImage"
	ArtistNameID    = "artistPageName"
	ArtworkID       = "artwork"
	NowPlayingID    = "nowplayingstring"
	StatusID        = "status"
	BackID          = "back"
	ContentID       = "content"
	AudioID         = "audio"
	ResultClass     = "result"
)

// Document is the widget's element tree, addressed by explicit handles.
type Document struct {
	UserTemplate    *Template
	TrackTemplate   *Template
	SearchForm      *Form
	Results         *Container
	ArtistTracks    *Container
	ArtistPage      *Panel
	ArtistPageImage *Panel
	ArtistPageName  *Label
	Artwork         *Panel
	NowPlaying      *Label
	Status          *Label
	Back            *Button
	Content         *Scroller
	Audio           *Audio
}

// New builds the widget document with the artist page hidden.
//
// Card templates carry the classes ["result", kind]; the second class is the discriminant.
func New(player Player) *Document {
	d := &Document{
		UserTemplate:    NewTemplate(UserTemplateID, false, ResultClass, "user"),
		TrackTemplate:   NewTemplate(TrackTemplateID, true, ResultClass, "track"),
		SearchForm:      &Form{Element: Element{ID: SearchFormID}},
		Results:         &Container{Element: Element{ID: ResultsID, Classes: []string{ResultsID}}},
		ArtistTracks:    &Container{Element: Element{ID: ArtistTracksID, Classes: []string{ArtistTracksID}}},
		ArtistPage:      &Panel{Element: Element{ID: ArtistPageID, Classes: []string{ArtistPageID}}},
		ArtistPageImage: &Panel{Element: Element{ID: ArtistImageID, Classes: []string{ArtistImageID}}},
		ArtistPageName:  &Label{Element: Element{ID: ArtistNameID, Classes: []string{ArtistNameID}}},
		Artwork:         &Panel{Element: Element{ID: ArtworkID, Classes: []string{ArtworkID}}},
		NowPlaying:      &Label{Element: Element{ID: NowPlayingID}},
		Status:          &Label{Element: Element{ID: StatusID}},
		Back:            &Button{Element: Element{ID: BackID, Classes: []string{BackID}}},
		Content:         &Scroller{Element: Element{ID: ContentID}},
		Audio:           &Audio{Element: Element{ID: AudioID}, player: player},
	}
	d.ArtistPage.Hide()
	return d
}
