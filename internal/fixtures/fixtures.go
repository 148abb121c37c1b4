// Package fixtures holds the static seed data every entity collection
// starts from. There is no persistence; these records exist for the
// process lifetime and mutate only through the API.
package fixtures

import (
	"time"

	"github.com/eripro/connect/internal/models"
	"github.com/eripro/connect/internal/policy"
)

// Users returns the seed accounts. Passwords are plaintext on purpose;
// credential security is out of scope for this platform.
func Users() []models.User {
	return []models.User{
		{
			ID: 1, FirstName: "Samsom", FatherName: "Dawit", Email: "e.vance@eripro.com",
			Role: models.RoleSuperAdmin, Department: models.DeptExecutive,
			Specialization: "Platform Architect", AvatarURL: "https://picsum.photos/id/1027/100/100",
			YearsOfExperience: 15, Password: "superadmin123", Country: "United States",
			Telephone: "+1-202-555-0104", Gender: "Female", BirthPlace: "Outside Eritrea",
			WantsToWorkInEritrea: "No", PrimaryGoal: "Platform Management", AgeGroup: "36-45",
			DocumentURL: "/docs/evance_cv.pdf",
			Bio:         "Visionary platform architect with 15 years of experience in building scalable, secure, and user-centric systems.",
			Skills:      []string{"System Architecture", "TypeScript", "React", "Node.js", "Cloud Infrastructure", "Security"},
			SocialMediaLinks: &models.SocialMediaLinks{
				LinkedIn: "https://linkedin.com/in/eleanorvance",
				Twitter:  "https://twitter.com/eleanorvance",
				GitHub:   "https://github.com/eleanorvance",
			},
		},
		{
			ID: 2, FirstName: "Zeray", FatherName: "Mebrahtu", Email: "m.holloway@eripro.com",
			Role: models.RoleAdmin, Department: models.DeptEngineering,
			Specialization: "Security Specialist", AvatarURL: "https://picsum.photos/id/1005/100/100",
			YearsOfExperience: 8, Password: "password123", Country: "United Kingdom",
			Telephone: "+44-20-7946-0958", Gender: "Male", BirthPlace: "Outside Eritrea",
			WantsToWorkInEritrea: "I don't know", PrimaryGoal: "Job Seeking", AgeGroup: "26-35",
		},
		{
			ID: 3, FirstName: "Yordanos", FatherName: "Yemane", Email: "c.oswald@eripro.com",
			Role: models.RoleManager, Department: models.DeptMarketing,
			Specialization: "Campaign Strategy", AvatarURL: "https://picsum.photos/id/1011/100/100",
			YearsOfExperience: 7, Password: "password123", Country: "Canada",
			Telephone: "+1-613-555-0162", Gender: "Female", BirthPlace: "Outside Eritrea",
			WantsToWorkInEritrea: "Yes", WorkDurationInEritrea: "1-2 years",
			PrimaryGoal: "Networking", AgeGroup: "26-35", DocumentURL: "/docs/coswald_resume.pdf",
		},
		{
			ID: 4, FirstName: "Efrem", FatherName: "Beraki", Email: "a.pendragon@eripro.com",
			Role: models.RoleTeamLead, Department: models.DeptSales,
			Specialization: "Enterprise Accounts", AvatarURL: "https://picsum.photos/id/1012/100/100",
			YearsOfExperience: 6, Password: "password123", Country: "United Kingdom",
			Telephone: "+44-121-496-0456", Gender: "Male", BirthPlace: "Outside Eritrea",
			WantsToWorkInEritrea: "No", PrimaryGoal: "Collaboration", AgeGroup: "26-35",
		},
		{
			ID: 5, FirstName: "Tesfay", FatherName: "Alem", Email: "j.smith@eripro.com",
			Role: models.RoleEmployee, Department: models.DeptEngineering,
			Specialization: "Frontend Developer", AvatarURL: "https://picsum.photos/id/1015/100/100",
			YearsOfExperience: 3, Password: "password123", Country: "Australia",
			Telephone: "+61-2-9999-0123", Gender: "Male", BirthPlace: "Outside Eritrea",
			HasEritreanID: true, EritreanIDNumber: "ER-ID-JS-015",
			WantsToWorkInEritrea: "Yes", WorkDurationInEritrea: "Permanently",
			PrimaryGoal: "Job Seeking", AgeGroup: "18-25", DocumentURL: "/docs/jsmith_portfolio.pdf",
			Bio:    "Creative Frontend Developer with a passion for building beautiful and intuitive user interfaces.",
			Skills: []string{"React", "TypeScript", "Tailwind CSS", "Next.js"},
			SocialMediaLinks: &models.SocialMediaLinks{
				LinkedIn: "https://linkedin.com/in/johnsmithdev",
				GitHub:   "https://github.com/johnsmithdev",
			},
		},
		{
			ID: 6, FirstName: "Winta", FatherName: "Tesfay", Email: "r.tyler@eripro.com",
			Role: models.RoleEmployee, Department: models.DeptDesign,
			Specialization: "UI/UX Designer", AvatarURL: "https://picsum.photos/id/1025/100/100",
			YearsOfExperience: 4, Password: "password123", Country: "United Kingdom",
			Telephone: "+44-1632-960987", Gender: "Female", BirthPlace: "Inside Eritrea",
			HasEritreanID: true, EritreanIDNumber: "ER-ID-RT-025",
			WantsToWorkInEritrea: "Yes", WorkDurationInEritrea: "6-12 months",
			PrimaryGoal: "Networking", AgeGroup: "18-25",
		},
		{
			ID: 7, FirstName: "Kubrom", FatherName: "Haile", Email: "k.tanaka@eripro.com",
			Role: models.RoleManager, Department: models.DeptEngineering,
			Specialization: "Backend Infrastructure", AvatarURL: "https://picsum.photos/id/237/100/100",
			YearsOfExperience: 10, Password: "password123", Country: "Japan",
			Telephone: "+81-3-4567-8901", Gender: "Male", BirthPlace: "Outside Eritrea",
			WantsToWorkInEritrea: "No", PrimaryGoal: "Collaboration", AgeGroup: "36-45",
		},
	}
}

// Channels returns the seed channel collection: the three
// general-purpose channels, one channel per department, and two DM
// pairs that exist from the start.
func Channels() []models.Channel {
	channels := []models.Channel{
		{ID: policy.ChannelBroadcast, Name: "Broadcast", Kind: models.ChannelKindStandard, Broadcast: true},
		{ID: policy.ChannelGeneral, Name: "# general", Kind: models.ChannelKindStandard},
		{ID: policy.ChannelRandom, Name: "# random", Kind: models.ChannelKindStandard},
	}
	for _, dep := range models.Departments {
		id := dep.ChannelID()
		channels = append(channels, models.Channel{
			ID:   id,
			Name: "# " + id,
			Kind: models.ChannelKindStandard,
		})
	}
	channels = append(channels,
		models.Channel{ID: "dm-1-6", Name: "Winta Tesfay", Kind: models.ChannelKindDM, Members: []int64{1, 6}},
		models.Channel{ID: "dm-3-4", Name: "Efrem Beraki", Kind: models.ChannelKindDM, Members: []int64{3, 4}},
	)
	return channels
}

// Messages returns the seed message stream. Timestamps are anchored to
// today so the transcript reads as the current day's activity.
func Messages() []models.Message {
	at := func(hour, minute int) time.Time {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	}
	return []models.Message{
		{ID: 1, ChannelID: policy.ChannelBroadcast, AuthorID: 1, Kind: models.MessageAnnouncement, CreatedAt: at(10, 5),
			Body: "Big news! Our Q3 campaign launch was a massive success. Huge thanks to the marketing and sales teams!"},
		{ID: 2, ChannelID: "engineering", AuthorID: 5, Kind: models.MessageStandard, CreatedAt: at(10, 10),
			Body: "Has anyone seen the new deployment pipeline specs?"},
		{ID: 3, ChannelID: "engineering", AuthorID: 2, Kind: models.MessageStandard, CreatedAt: at(10, 11),
			Body: "Check the wiki, I just updated it."},
		{ID: 4, ChannelID: policy.ChannelRandom, AuthorID: 6, Kind: models.MessageStandard, CreatedAt: at(11, 30),
			Body: "Does anyone want to grab lunch?"},
		{ID: 5, ChannelID: "dm-1-6", AuthorID: 1, Kind: models.MessageStandard, CreatedAt: at(14, 15),
			Body: "Your latest UI mockups for the dashboard are fantastic. Great work!"},
		{ID: 6, ChannelID: "dm-1-6", AuthorID: 6, Kind: models.MessageStandard, CreatedAt: at(14, 16),
			Body: "Thank you! I appreciate the feedback."},
		{ID: 7, ChannelID: "engineering", AuthorID: 2, Kind: models.MessageJobPosting, CreatedAt: at(15, 30),
			Job: &models.JobPosting{
				Title:       "Senior Frontend Developer",
				Company:     "EriPro Inc.",
				Location:    "Remote (US)",
				Description: "Join our innovative engineering team to build the next generation of our platform. Expertise in React, TypeScript, and modern web technologies is a must.",
			}},
	}
}

// ProductivityItems returns the seed calendar items, dated relative to
// process start.
func ProductivityItems() []models.ProductivityItem {
	const layout = "2006-01-02"
	now := time.Now()
	today := now.Format(layout)
	yesterday := now.AddDate(0, 0, -1).Format(layout)
	tomorrow := now.AddDate(0, 0, 1).Format(layout)

	return []models.ProductivityItem{
		{ID: "todo-1", Kind: models.ItemTodo, Body: "Finalize Q3 report slides", Date: today,
			TargetScope: models.TargetPersonal, TargetUserID: 3, CreatedBy: 3},
		{ID: "todo-2", Kind: models.ItemTodo, Body: "Submit expense reports", Date: today, Completed: true,
			TargetScope: models.TargetPersonal, TargetUserID: 5, CreatedBy: 5},
		{ID: "note-1", Kind: models.ItemNote, Body: "Marketing sync meeting notes: Discussed new ad campaign strategy, budget approved for social media push.", Date: yesterday,
			TargetScope: models.TargetDepartment, TargetDepartment: models.DeptMarketing, CreatedBy: 1},
		{ID: "todo-3", Kind: models.ItemTodo, Body: "Deploy security patch v1.2.5 to staging", Date: today,
			TargetScope: models.TargetDepartment, TargetDepartment: models.DeptEngineering, CreatedBy: 2},
		{ID: "note-2", Kind: models.ItemNote, Body: "Remember to check the new UI components from Rose.", Date: today,
			TargetScope: models.TargetPersonal, TargetUserID: 5, CreatedBy: 5},
		{ID: "todo-4", Kind: models.ItemTodo, Body: "Onboarding session with the new hire", Date: tomorrow,
			TargetScope: models.TargetDepartment, TargetDepartment: models.DeptHR, CreatedBy: 1},
	}
}
