package tui

// View represents the current view state of the application.
type View int

const (
	ViewMenu View = iota
	ViewSearchInput
	ViewSearchResults
	ViewHot
	ViewCollectionInput
	ViewCollectionList
	ViewDetail
	ViewVideos
	ViewComments
	ViewSettings
	ViewSetupToken
)

// String returns the string representation of a View.
func (v View) String() string {
	switch v {
	case ViewMenu:
		return "Menu"
	case ViewSearchInput:
		return "SearchInput"
	case ViewSearchResults:
		return "SearchResults"
	case ViewHot:
		return "Hot"
	case ViewCollectionInput:
		return "CollectionInput"
	case ViewCollectionList:
		return "CollectionList"
	case ViewDetail:
		return "Detail"
	case ViewVideos:
		return "Videos"
	case ViewComments:
		return "Comments"
	case ViewSettings:
		return "Settings"
	case ViewSetupToken:
		return "SetupToken"
	default:
		return "Unknown"
	}
}
