package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"uni-seeder/internal/model"
	"uni-seeder/internal/utils/errcode"
)

type UserFixture struct {
	Email  string     `yaml:"email"`
	Name   string     `yaml:"name"`
	Role   model.Role `yaml:"role"`
	Degree string     `yaml:"degree"`
}

// TopicFixture is a forum topic together with its opening post.
type TopicFixture struct {
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Content  string `yaml:"content"`
}

// Roster is the synthetic data the roster and forum workflows dispatch.
// Users are ignored by the forum workflow.
type Roster struct {
	Users     []UserFixture  `yaml:"users"`
	Topics    []TopicFixture `yaml:"topics"`
	Responses []string       `yaml:"responses"`
}

// LoadRoster reads a YAML fixture file. An empty path yields fallback, and
// any section the file leaves out keeps fallback's entries.
func LoadRoster(path string, fallback Roster) (Roster, error) {
	if path == "" {
		return fallback, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("%w: %v", errcode.ErrFixtureFile, err)
	}

	var roster Roster
	if err := yaml.Unmarshal(raw, &roster); err != nil {
		return Roster{}, fmt.Errorf("%w: %s: %v", errcode.ErrFixtureFile, path, err)
	}

	if len(roster.Users) == 0 {
		roster.Users = fallback.Users
	}
	if len(roster.Topics) == 0 {
		roster.Topics = fallback.Topics
	}
	if len(roster.Responses) == 0 {
		roster.Responses = fallback.Responses
	}
	return roster, nil
}

// DefaultRoster returns a fresh copy of the built-in university roster:
// twenty users (two mentors), five topics and seven canned replies.
func DefaultRoster() Roster {
	return Roster{
		Users: []UserFixture{
			{Email: "student1@uni54.edu", Name: "Alice Johnson", Role: model.RoleStudent, Degree: "Computer Science"},
			{Email: "student2@uni54.edu", Name: "Bob Smith", Role: model.RoleStudent, Degree: "Engineering"},
			{Email: "student3@uni54.edu", Name: "Carol Williams", Role: model.RoleStudent, Degree: "Business"},
			{Email: "student4@uni54.edu", Name: "David Brown", Role: model.RoleStudent, Degree: "Mathematics"},
			{Email: "student5@uni54.edu", Name: "Emma Davis", Role: model.RoleStudent, Degree: "Physics"},
			{Email: "student6@uni54.edu", Name: "Frank Miller", Role: model.RoleStudent, Degree: "Chemistry"},
			{Email: "student7@uni54.edu", Name: "Grace Wilson", Role: model.RoleStudent, Degree: "Biology"},
			{Email: "student8@uni54.edu", Name: "Henry Moore", Role: model.RoleStudent, Degree: "Literature"},
			{Email: "student9@uni54.edu", Name: "Ivy Taylor", Role: model.RoleStudent, Degree: "History"},
			{Email: "student10@uni54.edu", Name: "Jack Anderson", Role: model.RoleStudent, Degree: "Art"},
			{Email: "student11@uni54.edu", Name: "Kate Thomas", Role: model.RoleMentor, Degree: "Psychology"},
			{Email: "student12@uni54.edu", Name: "Liam Jackson", Role: model.RoleStudent, Degree: "Economics"},
			{Email: "student13@uni54.edu", Name: "Mia White", Role: model.RoleStudent, Degree: "Sociology"},
			{Email: "student14@uni54.edu", Name: "Noah Harris", Role: model.RoleStudent, Degree: "Architecture"},
			{Email: "student15@uni54.edu", Name: "Olivia Martin", Role: model.RoleStudent, Degree: "Music"},
			{Email: "student16@uni54.edu", Name: "Paul Thompson", Role: model.RoleMentor, Degree: "Medicine"},
			{Email: "student17@uni54.edu", Name: "Quinn Garcia", Role: model.RoleStudent, Degree: "Law"},
			{Email: "student18@uni54.edu", Name: "Rachel Martinez", Role: model.RoleStudent, Degree: "Pharmacy"},
			{Email: "student19@uni54.edu", Name: "Sam Robinson", Role: model.RoleStudent, Degree: "Environmental Science"},
			{Email: "student20@uni54.edu", Name: "Tina Clark", Role: model.RoleStudent, Degree: "Political Science"},
		},
		Topics: []TopicFixture{
			{Title: "Best study spots on campus?", Category: "Academics", Content: "Where do you all like to study? Looking for quiet places."},
			{Title: "Recommendations for accommodation", Category: "Accommodation", Content: "I'm new here. Any good places to live near campus?"},
			{Title: "Sports and activities", Category: "Activities", Content: "What sports clubs are available? I'd love to join one."},
			{Title: "Tips for new students", Category: "General", Content: "What advice would you give to someone just starting?"},
			{Title: "Public transport tips", Category: "Student Life", Content: "How do you get around the city? Any tips on transport passes?"},
		},
		Responses: []string{
			"Great question! I'd love to know too.",
			"Thanks for sharing this information!",
			"I completely agree with this.",
			"This is really helpful, thank you!",
			"Has anyone else experienced this?",
			"I can help with this if you need more info.",
			"This is exactly what I was looking for!",
		},
	}
}

// DefaultForum returns the topic catalogue used when seeding every
// university's forum.
func DefaultForum() Roster {
	return Roster{
		Topics: []TopicFixture{
			{Title: "Where to find accommodation near campus?", Category: "Accommodation", Content: "Hi everyone! I'm looking for recommendations on student residences or shared apartments near campus. Can anyone help?"},
			{Title: "Clubs and extracurricular activities", Category: "Activities", Content: "What sports or cultural clubs are there at the university? I'd like to join one to meet new people."},
			{Title: "Tips for new students", Category: "General", Content: "I'm starting university next semester. What advice would current students give me? What do you wish you had known before starting?"},
			{Title: "Public transport: passes and discounts", Category: "Student Life", Content: "Is there any special transport pass for students? What's the best option for getting around the city?"},
			{Title: "Best professors and recommended courses", Category: "Academics", Content: "For those who've been here for a while, which professors do you recommend? Are there any elective courses especially worth taking?"},
			{Title: "Libraries and study rooms", Category: "Academics", Content: "What are the best places to study at the university? Are the libraries open 24 hours?"},
		},
		Responses: []string{
			"I live in Central Residence, and it's great, though a bit expensive. Another option is sharing an apartment in the area of...",
			"I was in the theater club last year, and it was an incredible experience. I highly recommend it.",
			"My advice would be to get involved in campus life early on. Join clubs, attend events, and don't be afraid to ask for help.",
			"The student office can give you more information about transport passes. They usually have a 50% discount.",
			"Professor García in Physics is excellent. Her classes are very dynamic, and you learn a lot.",
			"The main library closes at 10 pm on weekdays, but there are 24-hour study rooms in Building C.",
		},
	}
}
