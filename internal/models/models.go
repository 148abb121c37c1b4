package models

import (
	"strings"
	"time"
)

// Role is one of the six ranked roles. The rank itself lives in the
// policy package; models only carry the name.
type Role string

const (
	RoleSuperAdmin Role = "Super Admin"
	RoleAdmin      Role = "Admin"
	RoleManager    Role = "Manager"
	RoleTeamLead   Role = "Team Lead"
	RoleEmployee   Role = "Employee"
	RoleUser       Role = "User"
)

// Roles lists every role, highest rank first.
var Roles = []Role{
	RoleSuperAdmin,
	RoleAdmin,
	RoleManager,
	RoleTeamLead,
	RoleEmployee,
	RoleUser,
}

// Department is the display name of a department. Every user belongs to
// exactly one, and each department has exactly one derived chat channel.
type Department string

const (
	DeptEngineering   Department = "Engineering"
	DeptHR            Department = "Human Resources"
	DeptMarketing     Department = "Marketing"
	DeptSales         Department = "Sales"
	DeptDesign        Department = "Design"
	DeptExecutive     Department = "Executive"
	DeptHealthcare    Department = "Healthcare"
	DeptConstruction  Department = "Construction"
	DeptTourism       Department = "Tourism"
	DeptBank          Department = "Bank"
	DeptMining        Department = "Mining"
	DeptHistory       Department = "History"
	DeptArchaeology   Department = "Archaeology"
	DeptAgriculture   Department = "Agriculture"
	DeptAviation      Department = "Aviation"
	DeptLegal         Department = "Legal"
	DeptSport         Department = "Sport"
	DeptUniversity    Department = "University"
	DeptWaterResearch Department = "Water Research"
)

// Departments lists every department in declaration order. Department
// channels are derived 1:1 from this list and are never created or
// destroyed independently.
var Departments = []Department{
	DeptEngineering,
	DeptHR,
	DeptMarketing,
	DeptSales,
	DeptDesign,
	DeptExecutive,
	DeptHealthcare,
	DeptConstruction,
	DeptTourism,
	DeptBank,
	DeptMining,
	DeptHistory,
	DeptArchaeology,
	DeptAgriculture,
	DeptAviation,
	DeptLegal,
	DeptSport,
	DeptUniversity,
	DeptWaterResearch,
}

// ChannelID derives the department's channel id: the display name
// lowercased with whitespace runs replaced by hyphens. Channel ids are
// matched by string equality everywhere, so this is the single place
// the normalization is computed.
func (d Department) ChannelID() string {
	return strings.Join(strings.Fields(strings.ToLower(string(d))), "-")
}

// Valid reports whether d is one of the enumerated departments.
func (d Department) Valid() bool {
	for _, dep := range Departments {
		if dep == d {
			return true
		}
	}
	return false
}

// SocialMediaLinks holds optional profile links.
type SocialMediaLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// User is a registered member of the platform. Password is compared in
// plaintext and never serialized.
type User struct {
	ID                    int64             `json:"id"`
	FirstName             string            `json:"first_name"`
	FatherName            string            `json:"father_name"`
	Email                 string            `json:"email"`
	Role                  Role              `json:"role"`
	Department            Department        `json:"department"`
	Specialization        string            `json:"specialization"`
	AvatarURL             string            `json:"avatar_url"`
	YearsOfExperience     int               `json:"years_of_experience"`
	Password              string            `json:"-"`
	Country               string            `json:"country,omitempty"`
	Telephone             string            `json:"telephone,omitempty"`
	Gender                string            `json:"gender"`
	BirthPlace            string            `json:"birth_place"`
	HasEritreanID         bool              `json:"has_eritrean_id"`
	EritreanIDNumber      string            `json:"eritrean_id_number,omitempty"`
	WantsToWorkInEritrea  string            `json:"wants_to_work_in_eritrea"`
	WorkDurationInEritrea string            `json:"work_duration_in_eritrea,omitempty"`
	PrimaryGoal           string            `json:"primary_goal"`
	AgeGroup              string            `json:"age_group"`
	DocumentURL           string            `json:"document_url,omitempty"`
	Bio                   string            `json:"bio,omitempty"`
	Skills                []string          `json:"skills,omitempty"`
	SocialMediaLinks      *SocialMediaLinks `json:"social_media_links,omitempty"`
}

// DisplayName is the user's full name as shown in DM channel titles.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.FatherName
}

// ChannelKind distinguishes chat rooms from direct-message channels.
// General-purpose, department and broadcast channels all share the
// standard kind; the Broadcast flag and the department-derived id tell
// them apart.
type ChannelKind string

const (
	ChannelKindStandard ChannelKind = "channel"
	ChannelKindDM       ChannelKind = "dm"
)

// Channel is a chat room. A DM channel is uniquely identified by its
// unordered two-element member pair; the repository enforces
// find-or-create so the same pair never yields two channels.
type Channel struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Kind      ChannelKind `json:"kind"`
	Members   []int64     `json:"members,omitempty"`
	Broadcast bool        `json:"broadcast,omitempty"`
}

// IsDM reports whether the channel is a direct-message channel.
func (c *Channel) IsDM() bool { return c.Kind == ChannelKindDM }

// HasMember reports whether userID is in the DM member pair.
func (c *Channel) HasMember(userID int64) bool {
	for _, id := range c.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// MessageKind is decided at creation time by the posting policy and is
// immutable afterwards.
type MessageKind string

const (
	MessageStandard     MessageKind = "standard"
	MessageAnnouncement MessageKind = "announcement"
	MessageJobPosting   MessageKind = "job_posting"
)

// JobPosting is the structured payload of a job-posting message.
type JobPosting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Message is an append-only chat message. Body carries plain text,
// possibly with embedded attachment markers; job postings carry the
// structured payload in Job instead.
type Message struct {
	ID        int64       `json:"id"`
	ChannelID string      `json:"channel_id"`
	AuthorID  int64       `json:"author_id"`
	Body      string      `json:"body,omitempty"`
	Job       *JobPosting `json:"job,omitempty"`
	Kind      MessageKind `json:"kind"`
	CreatedAt time.Time   `json:"created_at"`
}

// ProductivityItemKind is either a todo or a note.
type ProductivityItemKind string

const (
	ItemTodo ProductivityItemKind = "todo"
	ItemNote ProductivityItemKind = "note"
)

// TargetScope says whether an item belongs to one user or one department.
type TargetScope string

const (
	TargetPersonal   TargetScope = "personal"
	TargetDepartment TargetScope = "department"
)

// ProductivityItem is a calendar-day todo or note. For personal items
// TargetUserID is set; for department items TargetDepartment is set.
// Completed defaults to false and is only ever toggled on todos.
type ProductivityItem struct {
	ID               string               `json:"id"`
	Kind             ProductivityItemKind `json:"kind"`
	Body             string               `json:"body"`
	Date             string               `json:"date"` // YYYY-MM-DD, no time component
	Completed        bool                 `json:"completed"`
	TargetScope      TargetScope          `json:"target_scope"`
	TargetUserID     int64                `json:"target_user_id,omitempty"`
	TargetDepartment Department           `json:"target_department,omitempty"`
	CreatedBy        int64                `json:"created_by"`
}
