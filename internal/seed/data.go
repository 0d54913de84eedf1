package seed

import "github.com/josefahaz/bucksportbaseball/internal/entities"

func user(email, first, last, role string) entities.User {
	return entities.User{
		Email:     email,
		FirstName: first,
		LastName:  last,
		Role:      role,
		IsActive:  true,
	}
}

var seedUsers = []entities.User{
	user("ekennard@bucksportll.org", "Erick", "Kennard", entities.RoleAdmin),
	user("jbowden@bucksportll.org", "Jamie", "Bowden", entities.RoleAdmin),
	user("jrobinson@bucksportll.org", "Joby", "Robinson", entities.RoleAdmin),
	user("jhazlett@bucksportll.org", "Joseph", "Hazlett", entities.RoleAdmin),
	user("klittlefield@bucksportll.org", "Katie", "Littlefield", entities.RoleAdmin),
	user("kburgess@bucksportll.org", "Kim", "Burgess", entities.RoleAdmin),
	user("akennard@bucksportll.org", "Ashley", "Kennard", entities.RoleBoardMember),
	user("crennick@bucksportll.org", "Christopher", "Rennick", entities.RoleBoardMember),
	user("hlittlefield@bucksportll.org", "Harold", "Littlefield", entities.RoleBoardMember),
	user("lhazlett@bucksportll.org", "Lisa", "Hazlett", entities.RoleBoardMember),
	user("rlightbody@bucksportll.org", "Ryan", "Lightbody", entities.RoleBoardMember),
	user("semery@bucksportll.org", "Shelby", "Emery", entities.RoleBoardMember),
	user("tbeaulieu@bucksportll.org", "Taylor", "Beaulieu", entities.RoleBoardMember),
	user("wwentworth@bucksportll.org", "Whitney", "Wentworth", entities.RoleBoardMember),
}

func member(name, position string, division *string) entities.BoardMember {
	return entities.BoardMember{
		Name:     name,
		Position: position,
		Division: division,
		Email:    "N/A",
		Phone:    "N/A",
	}
}

func div(d string) *string { return &d }

var seedBoardMembers = []entities.BoardMember{
	member("Katie Littlefield", "President", nil),
	member("Erick Kennard", "Vice President", nil),
	member("Kim Burgess", "Treasurer", nil),
	member("Joe Hazlett", "Fundraising/Marketing Coordinator", nil),
	member("Jamie Bowden", "Umpire in Chief", nil),
	member("John Robinson", "Equipment Coordinator", nil),
	member("Ryan Lighthouse", "Secretary", div(string(entities.DivisionBaseball))),
	member("Harold Littlefield", "Coaching Coordinator", div(string(entities.DivisionBaseball))),
	member("Whitney Wentworth", "Player Agent", div(string(entities.DivisionBaseball))),
	member("Ashley Kennard", "Concessions Manager", div(string(entities.DivisionBaseball))),
	member("Shelby Emery", "Vice President", div(string(entities.DivisionSoftball))),
	member("Lisa Hazlett", "Secretary", div(string(entities.DivisionSoftball))),
	member("Chris Remick", "Coaching Coordinator", div(string(entities.DivisionSoftball))),
	member("Taylor Beaulieu", "Player Agent", div(string(entities.DivisionSoftball))),
	member("VACANT", "Concession Manager", div(string(entities.DivisionSoftball))),
}

var seedCoaches = []entities.Coach{
	{Name: "Rob Wadleigh", Email: "N/A", Phone: "N/A"},
}

var seedLocations = []string{
	"Bucksport Field 1",
	"Bucksport Field 2",
	"Bucksport Softball Field",
	"Miles Lane Complex",
	"Away - Ellsworth",
	"Away - Brewer",
	"Away - Bangor",
}

// item builds an inventory entry; empty size or notes stay NULL.
func item(name, category, size string, quantity int, notes string) entities.InventoryItem {
	it := entities.InventoryItem{
		ItemName:      name,
		Category:      category,
		AssignedCoach: "Unassigned",
		Quantity:      quantity,
		Status:        entities.StatusAvailable,
	}
	if size != "" {
		it.Size = &size
	}
	if notes != "" {
		it.Notes = &notes
	}
	return it
}

// Fall 2025 equipment count, baseball shed first, then the softball shed.
var seedInventory = []entities.InventoryItem{
	item("Jugs pitch machine", entities.CategoryOther, "", 1, ""),
	item("Practice baseballs", entities.CategoryBall, "", 57, ""),
	item("Practice tee balls", entities.CategoryBall, "", 56, ""),
	item("Softball", entities.CategoryBall, "", 1, ""),
	item("Wiffle / Pickleball balls", entities.CategoryBall, "", 63, ""),
	item("Tennis balls", entities.CategoryBall, "", 33, ""),
	item("Hard yellow practice balls", entities.CategoryBall, "", 20, ""),
	item("Little League game balls", entities.CategoryBall, "", 38, "26 still wrapped"),
	item("Soft compression Wilson game balls", entities.CategoryBall, "", 11, "10 still wrapped"),

	item("Batting helmet - Blue", entities.CategoryHelmet, "One Size", 10, "Some with face guards attached"),
	item("Batting helmet - Black", entities.CategoryHelmet, "One Size", 15, "Some with face guards attached"),
	item("Batting helmet - Purple", entities.CategoryHelmet, "One Size", 14, "Some with face guards attached"),
	item("Batting helmet - Green", entities.CategoryHelmet, "One Size", 1, ""),
	item("Batting helmet - White", entities.CategoryHelmet, "One Size", 1, ""),
	item("Face guard shield - Black", entities.CategoryHelmet, "", 18, ""),
	item("Face guard shield - Silver", entities.CategoryHelmet, "", 3, "Still in packaging"),

	item("Catcher helmet (full)", entities.CategoryHelmet, "", 10, "One new with tags; one older in poor condition"),
	item("Catcher glove (left hand)", entities.CategoryGlove, "", 4, ""),
	item("Chest protector", entities.CategoryOther, "Various", 14, "Several in excellent condition"),
	item("Leg pads (set)", entities.CategoryOther, "", 12, "Several in excellent condition"),

	item("Baseball bat (USA logo)", entities.CategoryBat, "", 12, ""),
	item("Tee ball bat", entities.CategoryBat, "", 3, ""),
	item("Baseball bat (no USA logo)", entities.CategoryBat, "", 1, ""),

	item("Hitting tee", entities.CategoryOther, "", 9, ""),
	item("Hitting tee (new in package)", entities.CategoryOther, "", 2, "Brand new in packages"),

	item("External umpire vest", entities.CategoryOther, "", 1, ""),
	item("Internal umpire vest", entities.CategoryOther, "", 1, ""),
	item("Umpire full helmet", entities.CategoryHelmet, "", 1, ""),
	item("Umpire mask (older)", entities.CategoryOther, "", 3, ""),
	item("Umpire leg pads set", entities.CategoryOther, "", 1, ""),
	item("Umpire additional leg pad", entities.CategoryOther, "", 1, ""),

	item("Guide Line white field marker (bags)", entities.CategoryOther, "", 45, "Stacked on pallet - approximate count"),
	item("Infield turf (bags)", entities.CategoryOther, "", 30, "Stacked on pallet - approximate count"),
	item("White spray cans", entities.CategoryOther, "", 0, "Harold took inside to keep warm - count unknown"),

	item("Blue jersey (no logo)", entities.CategoryJersey, "Small Youth", 14, ""),
	item("Gray Easton youth tee", entities.CategoryJersey, "Youth", 5, "Wrapped in new packaging"),
	item("Maroon tee", entities.CategoryJersey, "2XL Youth", 1, "Wrapped in new packaging"),
	item("Blue jersey", entities.CategoryJersey, "Youth L", 2, "Wrapped in new packaging"),
	item("Gray jersey", entities.CategoryJersey, "Youth L", 8, "Wrapped in new packaging"),
	item("Yellow GB tee with number", entities.CategoryJersey, "", 10, "Numbers on back"),

	item("Purple game jersey", entities.CategoryJersey, "Youth S", 2, ""),
	item("Purple game jersey", entities.CategoryJersey, "Youth M", 5, ""),
	item("Purple game jersey", entities.CategoryJersey, "Youth L", 8, ""),
	item("Purple game jersey", entities.CategoryJersey, "Youth XL", 2, ""),
	item("Purple game jersey", entities.CategoryJersey, "Mens S", 3, ""),
	item("Purple game jersey", entities.CategoryJersey, "Mens M", 3, ""),
	item("Purple game jersey", entities.CategoryJersey, "Mens L", 5, ""),
	item("Purple game jersey", entities.CategoryJersey, "Mens XL", 5, ""),

	item("Purple Bucksport All Stars Henley", entities.CategoryJersey, "Youth M", 4, "Gold lettering; all star patch on sleeve"),
	item("Purple Bucksport All Stars Henley", entities.CategoryJersey, "Youth L", 7, "Gold lettering; all star patch on sleeve"),
	item("Purple Bucksport All Stars Henley", entities.CategoryJersey, "Adult S", 1, "Gold lettering; all star patch on sleeve"),
	item("Purple Bucksport All Stars Henley", entities.CategoryJersey, "Adult M", 1, "Gold lettering; all star patch on sleeve"),
	item("Purple all star jersey", entities.CategoryJersey, "Adult S", 2, "All star patch on sleeve"),
	item("Purple all star jersey", entities.CategoryJersey, "Adult M", 3, "All star patch on sleeve"),
	item("Purple all star jersey", entities.CategoryJersey, "Adult L", 1, "All star patch on sleeve"),
	item("Purple all star jersey", entities.CategoryJersey, "Adult XL", 1, "All star patch on sleeve"),

	item("Yellow socks (package)", entities.CategoryOther, "", 1, ""),
	item("Purple socks (package)", entities.CategoryOther, "", 1, ""),
	item("Black baseball belt", entities.CategoryOther, "", 11, ""),

	item("Gray pants with blue piping", entities.CategoryPants, "Youth XL", 23, "Most/all wrapped in new packaging"),
	item("Gray pants", entities.CategoryPants, "Size 30", 3, "Wrapped in new packaging"),
	item("Used gray pants (tote)", entities.CategoryPants, "Various", 1, "Tote of used pants"),
	item("Gray pants", entities.CategoryPants, "Youth S/XS", 1, "Tote of pants"),
	item("Gray pants", entities.CategoryPants, "Medium", 1, "In separate tote"),

	item("Purple cotton tee (Golden Bucks)", entities.CategoryJersey, "Youth Various", 16, ""),
	item("Gold cotton tee (Golden Bucks)", entities.CategoryJersey, "Youth Various", 12, ""),

	item("Batting tee", entities.CategoryOther, "", 1, "Softball inventory"),

	item("12 inch game balls (new in boxes)", entities.CategoryBall, "12 inch", 35, "Softball"),
	item("11 inch game balls (new in boxes)", entities.CategoryBall, "11 inch", 28, "Softball"),
	item("11 inch game balls (cardboard boxes)", entities.CategoryBall, "11 inch", 48, "Softball"),
	item("12 inch practice balls", entities.CategoryBall, "12 inch", 43, "Softball"),
	item("11 inch practice balls", entities.CategoryBall, "11 inch", 44, "Softball"),
	item("11 inch PXS sponge core balls", entities.CategoryBall, "11 inch", 23, "Softball"),
	item("12 inch practice soft balls", entities.CategoryBall, "12 inch", 10, "Softball"),
	item("11 inch practice soft balls", entities.CategoryBall, "11 inch", 7, "Softball"),
	item("12 inch pitching machine balls", entities.CategoryBall, "12 inch", 12, "Softball - in a box"),
	item("Wiffle balls", entities.CategoryBall, "", 1, "Softball - plastic bag"),

	item("Softball helmet", entities.CategoryHelmet, "6.5-7.5", 14, "All but one with face guard; most older; most lack current approval stickers"),
	item("Softball bat (USSSA)", entities.CategoryBat, "", 4, "Older bats"),
	item("Softball bat (no logo)", entities.CategoryBat, "", 1, "Older bat"),
	item("Baseball bat", entities.CategoryBat, "", 2, "Softball inventory"),
	item("Tee ball bat", entities.CategoryBat, "", 1, "Softball inventory"),

	item("Leg pads (size 17)", entities.CategoryOther, "Size 17", 1, "Blue bin - softball"),
	item("Leg pads (larger)", entities.CategoryOther, "", 1, "Blue bin - softball"),
	item("Chest protector", entities.CategoryOther, "", 2, "Blue bin - softball"),
	item("Face mask (no full helmet)", entities.CategoryHelmet, "", 2, "Blue bin - softball"),

	item("Small leg pads", entities.CategoryOther, "Small", 1, "Black bin - softball"),
	item("Chest protector", entities.CategoryOther, "", 1, "Black bin - softball"),
	item("Leg pads with knee savers", entities.CategoryOther, "Size 13", 1, "Black bin - blue Rawlings bag"),
	item("Chest protector", entities.CategoryOther, "", 1, "Black bin - blue Rawlings bag"),
	item("Full helmet", entities.CategoryHelmet, "", 1, "Black bin - blue Rawlings bag"),

	item("Leg pads", entities.CategoryOther, "", 1, "Black Easton bag"),
	item("Chest protector", entities.CategoryOther, "", 1, "Black Easton bag"),
	item("Full helmet", entities.CategoryHelmet, "", 1, "Black Easton bag"),

	item("Full helmet (large)", entities.CategoryHelmet, "Large", 1, "Dicks Sporting Goods bag"),
	item("Knee pads", entities.CategoryOther, "", 1, "Dicks Sporting Goods bag"),
	item("Chest pads", entities.CategoryOther, "", 1, "Dicks Sporting Goods bag"),

	item("Umpire shirt", entities.CategoryOther, "", 1, "Black sea bag"),
	item("Umpire leg pads", entities.CategoryOther, "", 1, "Black sea bag"),
	item("Umpire chest protector", entities.CategoryOther, "", 1, "Black sea bag"),
	item("Umpire face mask (non-helmet)", entities.CategoryOther, "", 2, "Black sea bag"),
	item("Ball and strike counter", entities.CategoryOther, "", 1, "Black sea bag"),
	item("Plate brush", entities.CategoryOther, "", 1, "Black sea bag"),

	item("Girls pants - Gray", entities.CategoryPants, "Girls S", 3, "Some new with tags; most older/used"),
	item("Girls pants - Gray", entities.CategoryPants, "Girls M", 2, "Some new with tags; most older/used"),
	item("Girls pants - Black", entities.CategoryPants, "Girls M", 1, ""),
	item("Girls pants - Gray", entities.CategoryPants, "Girls L", 3, "Some new with tags; most older/used"),
	item("Womens pants - Gray", entities.CategoryPants, "Womens M", 1, ""),
	item("Womens pants - Gray", entities.CategoryPants, "Womens XL", 1, ""),

	item("Bennett Painting coaches jersey", entities.CategoryJersey, "Adult", 4, ""),
	item("Left handed glove", entities.CategoryGlove, "Various", 5, "Donated bin - catch with left hand"),
	item("Cleats", entities.CategoryCleats, "Youth 1-8.5", 10, "Donated bin - mostly good condition; some older/poor"),
	item("Dura Stripe marking paint cans", entities.CategoryOther, "", 11, "Open case"),
	item("Red first aid kit", entities.CategoryOther, "", 4, "Very close to full with bandages and basic essentials"),
	item("Blue first aid kit", entities.CategoryOther, "", 1, "Very close to full with bandages and basic essentials"),
}
