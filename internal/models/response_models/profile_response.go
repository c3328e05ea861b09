package response_models

type ProfileStats struct {
	Trips     int64 `json:"trips"`
	Followers int   `json:"followers"`
	Following int   `json:"following"`
}

type ProfileUser struct {
	UserResponse
	Username string       `json:"username"`
	Location string       `json:"location"`
	Stats    ProfileStats `json:"stats"`
}

type AchievementDetail struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Achievement struct {
	ID          string            `json:"id"`
	Achievement AchievementDetail `json:"achievement"`
}

type ProfileResponse struct {
	User         ProfileUser   `json:"user"`
	Achievements []Achievement `json:"achievements"`
}
