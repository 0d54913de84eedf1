// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"fmt"
	"time"

	"github.com/josefahaz/bucksportbaseball/internal/api"
	"github.com/josefahaz/bucksportbaseball/internal/entities"
)

const dateLayout = "2006-01-02"

// FromAPITeam builds an entities.Team from transport DTO.
func FromAPITeam(src api.Team) entities.Team {
	return entities.Team{
		ID:       src.ID,
		Name:     src.Name,
		Division: src.Division,
		Coach:    src.Coach,
	}
}

// ToAPITeam maps entities.Team to transport model.
func ToAPITeam(team entities.Team) api.Team {
	return api.Team{
		ID:       team.ID,
		Name:     team.Name,
		Division: team.Division,
		Coach:    team.Coach,
	}
}

// ToAPITeamList maps a team slice to transport slice.
func ToAPITeamList(teams []entities.Team) []api.Team {
	res := make([]api.Team, 0, len(teams))
	for _, t := range teams {
		res = append(res, ToAPITeam(t))
	}
	return res
}

// FromAPIPlayer builds an entities.Player, parsing the birthdate.
func FromAPIPlayer(src api.Player) (entities.Player, error) {
	birthdate, err := parseDate(src.Birthdate, "birthdate")
	if err != nil {
		return entities.Player{}, err
	}
	return entities.Player{
		ID:        src.ID,
		FirstName: src.FirstName,
		LastName:  src.LastName,
		Birthdate: birthdate,
		Email:     src.Email,
		Phone:     src.Phone,
		TeamID:    src.TeamID,
	}, nil
}

// ToAPIPlayer maps entities.Player to transport model.
func ToAPIPlayer(p entities.Player) api.Player {
	return api.Player{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Birthdate: p.Birthdate.Format(dateLayout),
		Email:     p.Email,
		Phone:     p.Phone,
		TeamID:    p.TeamID,
	}
}

// ToAPIPlayerList maps a player slice to transport slice.
func ToAPIPlayerList(players []entities.Player) []api.Player {
	res := make([]api.Player, 0, len(players))
	for _, p := range players {
		res = append(res, ToAPIPlayer(p))
	}
	return res
}

// FromAPIEvent builds an entities.Event from transport DTO.
func FromAPIEvent(src api.Event) entities.Event {
	return entities.Event{
		ID:          src.ID,
		Title:       src.Title,
		Description: src.Description,
		StartTime:   src.StartTime,
		EndTime:     src.EndTime,
		Location:    src.Location,
		TeamID:      src.TeamID,
	}
}

// ToAPIEvent maps entities.Event to transport model.
func ToAPIEvent(e entities.Event) api.Event {
	return api.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Location:    e.Location,
		TeamID:      e.TeamID,
	}
}

// ToAPIEventList maps an event slice to transport slice.
func ToAPIEventList(events []entities.Event) []api.Event {
	res := make([]api.Event, 0, len(events))
	for _, e := range events {
		res = append(res, ToAPIEvent(e))
	}
	return res
}

// FromAPIItem builds an entities.InventoryItem from transport DTO.
func FromAPIItem(src api.InventoryItem) entities.InventoryItem {
	return entities.InventoryItem{
		ID:            src.ID,
		ItemName:      src.ItemName,
		Category:      src.Category,
		Size:          src.Size,
		Team:          src.Team,
		Division:      src.Division,
		Notes:         src.Notes,
		AssignedCoach: src.AssignedCoach,
		Quantity:      src.Quantity,
		Status:        src.Status,
	}
}

// ToAPIItem maps entities.InventoryItem to transport model.
func ToAPIItem(item entities.InventoryItem) api.InventoryItem {
	return api.InventoryItem{
		ID:            item.ID,
		ItemName:      item.ItemName,
		Category:      item.Category,
		Size:          item.Size,
		Team:          item.Team,
		Division:      item.Division,
		Notes:         item.Notes,
		AssignedCoach: item.AssignedCoach,
		Quantity:      item.Quantity,
		Status:        item.Status,
		LastUpdated:   item.LastUpdated,
	}
}

// ToAPIItemList maps an inventory slice to transport slice.
func ToAPIItemList(items []entities.InventoryItem) []api.InventoryItem {
	res := make([]api.InventoryItem, 0, len(items))
	for _, item := range items {
		res = append(res, ToAPIItem(item))
	}
	return res
}

// FromAPIBoardMember builds an entities.BoardMember from transport DTO.
func FromAPIBoardMember(src api.BoardMember) entities.BoardMember {
	return entities.BoardMember{
		ID:       src.ID,
		Name:     src.Name,
		Position: src.Position,
		Division: src.Division,
		Email:    src.Email,
		Phone:    src.Phone,
	}
}

// ToAPIBoardMember maps entities.BoardMember to transport model.
func ToAPIBoardMember(m entities.BoardMember) api.BoardMember {
	return api.BoardMember{
		ID:       m.ID,
		Name:     m.Name,
		Position: m.Position,
		Division: m.Division,
		Email:    m.Email,
		Phone:    m.Phone,
	}
}

// ToAPIBoardMemberList maps a board roster to transport slice.
func ToAPIBoardMemberList(members []entities.BoardMember) []api.BoardMember {
	res := make([]api.BoardMember, 0, len(members))
	for _, m := range members {
		res = append(res, ToAPIBoardMember(m))
	}
	return res
}

// FromAPICoach builds an entities.Coach from transport DTO.
func FromAPICoach(src api.Coach) entities.Coach {
	return entities.Coach{
		ID:       src.ID,
		Name:     src.Name,
		Email:    src.Email,
		Phone:    src.Phone,
		TeamName: src.TeamName,
		Division: src.Division,
	}
}

// ToAPICoach maps entities.Coach to transport model.
func ToAPICoach(c entities.Coach) api.Coach {
	return api.Coach{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		TeamName: c.TeamName,
		Division: c.Division,
	}
}

// ToAPICoachList maps a coaching roster to transport slice.
func ToAPICoachList(coaches []entities.Coach) []api.Coach {
	res := make([]api.Coach, 0, len(coaches))
	for _, c := range coaches {
		res = append(res, ToAPICoach(c))
	}
	return res
}

// ToAPILocation maps entities.Location to transport model.
func ToAPILocation(l entities.Location) api.Location {
	return api.Location{ID: l.ID, Name: l.Name}
}

// ToAPILocationList maps locations to transport slice.
func ToAPILocationList(locations []entities.Location) []api.Location {
	res := make([]api.Location, 0, len(locations))
	for _, l := range locations {
		res = append(res, ToAPILocation(l))
	}
	return res
}

// FromAPIScheduleEvent builds an entities.ScheduleEvent, parsing the event date.
func FromAPIScheduleEvent(src api.ScheduleEvent) (entities.ScheduleEvent, error) {
	date, err := parseDate(src.EventDate, "event_date")
	if err != nil {
		return entities.ScheduleEvent{}, err
	}
	return entities.ScheduleEvent{
		ID:        src.ID,
		Title:     src.Title,
		EventDate: date,
		EventTime: src.EventTime,
		EventType: src.EventType,
		Location:  src.Location,
		TeamID:    src.TeamID,
		CoachID:   src.CoachID,
		Notes:     src.Notes,
		Status:    entities.ScheduleStatus(src.Status),
	}, nil
}

// ToAPIScheduleEvent maps entities.ScheduleEvent to transport model.
func ToAPIScheduleEvent(e entities.ScheduleEvent) api.ScheduleEvent {
	return api.ScheduleEvent{
		ID:        e.ID,
		Title:     e.Title,
		EventDate: e.EventDate.Format(dateLayout),
		EventTime: e.EventTime,
		EventType: e.EventType,
		Location:  e.Location,
		TeamID:    e.TeamID,
		CoachID:   e.CoachID,
		Notes:     e.Notes,
		Status:    string(e.Status),
	}
}

// ToAPIScheduleEventList maps calendar entries to transport slice.
func ToAPIScheduleEventList(events []entities.ScheduleEvent) []api.ScheduleEvent {
	res := make([]api.ScheduleEvent, 0, len(events))
	for _, e := range events {
		res = append(res, ToAPIScheduleEvent(e))
	}
	return res
}

// FromAPIDonation builds an entities.Donation, parsing the donation date.
func FromAPIDonation(src api.Donation) (entities.Donation, error) {
	donatedOn, err := parseDate(src.DonatedOn, "donated_on")
	if err != nil {
		return entities.Donation{}, err
	}
	return entities.Donation{
		ID:            src.ID,
		Name:          src.Name,
		Amount:        src.Amount,
		DonationType:  src.DonationType,
		DonatedOn:     donatedOn,
		Division:      src.Division,
		ContactPerson: src.ContactPerson,
		Phone:         src.Phone,
		Email:         src.Email,
		Address:       src.Address,
		Notes:         src.Notes,
	}, nil
}

// ToAPIDonation maps entities.Donation to transport model.
func ToAPIDonation(d entities.Donation) api.Donation {
	return api.Donation{
		ID:            d.ID,
		Name:          d.Name,
		Amount:        d.Amount,
		DonationType:  d.DonationType,
		DonatedOn:     d.DonatedOn.Format(dateLayout),
		Division:      d.Division,
		ContactPerson: d.ContactPerson,
		Phone:         d.Phone,
		Email:         d.Email,
		Address:       d.Address,
		Notes:         d.Notes,
	}
}

// ToAPIDonationList maps donations to transport slice.
func ToAPIDonationList(donations []entities.Donation) []api.Donation {
	res := make([]api.Donation, 0, len(donations))
	for _, d := range donations {
		res = append(res, ToAPIDonation(d))
	}
	return res
}

// ToAPIDonationSummary maps per-year totals to transport slice.
func ToAPIDonationSummary(summary []entities.DonationYearSummary) []api.DonationYearSummary {
	res := make([]api.DonationYearSummary, 0, len(summary))
	for _, s := range summary {
		res = append(res, api.DonationYearSummary{Year: s.Year, Count: s.Count, Total: s.Total})
	}
	return res
}

// ToAPISheetSummary maps sheet metadata to transport model.
func ToAPISheetSummary(s entities.SponsorshipSheet) api.SheetSummary {
	return api.SheetSummary{SheetName: s.SheetName, Columns: s.Columns, UpdatedAt: s.UpdatedAt}
}

// ToAPISheetSummaryList maps sheet metadata to transport slice.
func ToAPISheetSummaryList(sheets []entities.SponsorshipSheet) []api.SheetSummary {
	res := make([]api.SheetSummary, 0, len(sheets))
	for _, s := range sheets {
		res = append(res, ToAPISheetSummary(s))
	}
	return res
}

// ToAPISheet assembles a full sheet from its metadata and ordered rows.
func ToAPISheet(sheet entities.SponsorshipSheet, rows []entities.SponsorshipRow) api.Sheet {
	data := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		data = append(data, r.Data)
	}
	return api.Sheet{
		SheetName: sheet.SheetName,
		Columns:   sheet.Columns,
		Rows:      data,
		UpdatedAt: sheet.UpdatedAt,
	}
}

// FromAPISheetRows expands replacement rows into entities keyed by sheet name.
// Rows are numbered like workbook rows: the header is row 1, data starts at 2,
// so a fetched sheet can be sent back without renumbering.
func FromAPISheetRows(sheetName string, rows []map[string]any) []entities.SponsorshipRow {
	res := make([]entities.SponsorshipRow, 0, len(rows))
	for i, data := range rows {
		res = append(res, entities.SponsorshipRow{SheetName: sheetName, RowIndex: i + 2, Data: data})
	}
	return res
}

// FromAPIUser builds an entities.User from transport DTO.
func FromAPIUser(src api.User) entities.User {
	return entities.User{
		ID:        src.ID,
		Email:     src.Email,
		FirstName: src.FirstName,
		LastName:  src.LastName,
		Role:      src.Role,
		IsActive:  src.IsActive,
	}
}

// ToAPIUser maps entities.User to transport model.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

// ToAPIUserList maps accounts to transport slice.
func ToAPIUserList(users []entities.User) []api.User {
	res := make([]api.User, 0, len(users))
	for _, u := range users {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// ToAPIActivityList maps audit entries to transport slice.
func ToAPIActivityList(entries []entities.ActivityEntry) []api.ActivityEntry {
	res := make([]api.ActivityEntry, 0, len(entries))
	for _, e := range entries {
		res = append(res, api.ActivityEntry{
			ID:         e.ID,
			ActorEmail: e.ActorEmail,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Detail:     e.Detail,
			CreatedAt:  e.CreatedAt,
		})
	}
	return res
}

func parseDate(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", entities.ErrInvalidArgument, field)
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", entities.ErrInvalidArgument, field)
	}
	return t, nil
}
