package console

import (
	"errors"
	"sort"
	"strings"

	"video-player/internal/player"
)

type command struct {
	usage    string
	syntax   string
	help     string
	minArgs  int
	maxArgs  int
	variadic bool
	run      func(c *Console, args []string)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"NUMBER_OF_VIDEOS":       {help: "Shows how many videos are in the library.", run: (*Console).numberOfVideos},
		"SHOW_ALL_VIDEOS":        {help: "Lists all videos from the library.", run: (*Console).showAllVideos},
		"PLAY":                   {usage: "video_id", syntax: "<video_id>", help: "Plays specified video.", minArgs: 1, maxArgs: 1, run: (*Console).play},
		"PLAY_RANDOM":            {help: "Plays a random video from the library.", run: (*Console).playRandom},
		"STOP":                   {help: "Stop the current video.", run: (*Console).stop},
		"PAUSE":                  {help: "Pause the current video.", run: (*Console).pause},
		"CONTINUE":               {help: "Resume the current paused video.", run: (*Console).continueVideo},
		"SHOW_PLAYING":           {help: "Displays the title, url and paused status of the video that is currently playing (or paused).", run: (*Console).showPlaying},
		"CREATE_PLAYLIST":        {usage: "playlist_name", syntax: "<playlist_name>", help: "Creates a new (empty) playlist with the provided name.", minArgs: 1, maxArgs: 1, run: (*Console).createPlaylist},
		"ADD_TO_PLAYLIST":        {usage: "playlist_name and video_id", syntax: "<playlist_name> <video_id>", help: "Adds the requested video to the playlist.", minArgs: 2, maxArgs: 2, run: (*Console).addToPlaylist},
		"REMOVE_FROM_PLAYLIST":   {usage: "playlist_name and video_id", syntax: "<playlist_name> <video_id>", help: "Removes the specified video from the specified playlist.", minArgs: 2, maxArgs: 2, run: (*Console).removeFromPlaylist},
		"CLEAR_PLAYLIST":         {usage: "playlist_name", syntax: "<playlist_name>", help: "Removes all the videos from the playlist.", minArgs: 1, maxArgs: 1, run: (*Console).clearPlaylist},
		"DELETE_PLAYLIST":        {usage: "playlist_name", syntax: "<playlist_name>", help: "Deletes the playlist.", minArgs: 1, maxArgs: 1, run: (*Console).deletePlaylist},
		"SHOW_PLAYLIST":          {usage: "playlist_name", syntax: "<playlist_name>", help: "Displays videos in the specified playlist.", minArgs: 1, maxArgs: 1, run: (*Console).showPlaylist},
		"SHOW_ALL_PLAYLISTS":     {help: "Displays all available playlists.", run: (*Console).showAllPlaylists},
		"SEARCH_VIDEOS":          {usage: "search_term", syntax: "<search_term>", help: "Displays search results by a given query.", minArgs: 1, variadic: true, run: (*Console).searchVideos},
		"SEARCH_VIDEOS_WITH_TAG": {usage: "tag_name", syntax: "<tag_name>", help: "Displays search results by a given tag.", minArgs: 1, maxArgs: 1, run: (*Console).searchVideosWithTag},
		"FLAG_VIDEO":             {usage: "video_id and an optional flag_reason", syntax: "<video_id> [flag_reason]", help: "Mark a video as flagged.", minArgs: 1, variadic: true, run: (*Console).flagVideo},
		"ALLOW_VIDEO":            {usage: "video_id", syntax: "<video_id>", help: "Removes a flag from a video.", minArgs: 1, maxArgs: 1, run: (*Console).allowVideo},
		"HELP":                   {help: "Displays help.", run: (*Console).help},
	}
}

// reason renders an error as the text that follows "Cannot ...: ".
func reason(err error) string {
	switch {
	case errors.Is(err, player.ErrVideoNotFound):
		return "Video does not exist"
	case errors.Is(err, player.ErrPlaylistNotFound):
		return "Playlist does not exist"
	case errors.Is(err, player.ErrPlaylistExists):
		return "A playlist with the same name already exists"
	case errors.Is(err, player.ErrInvalidPlaylistName):
		return "Playlist name must not be empty or contain spaces"
	case errors.Is(err, player.ErrAlreadyInPlaylist):
		return "Video already added"
	case errors.Is(err, player.ErrNotInPlaylist):
		return "Video is not in playlist"
	case errors.Is(err, player.ErrNothingPlaying):
		return "No video is currently playing"
	case errors.Is(err, player.ErrNotPaused):
		return "Video is not paused"
	case errors.Is(err, player.ErrNoVideosAvailable):
		return "No videos available"
	default:
		return err.Error()
	}
}

func (c *Console) numberOfVideos(_ []string) {
	c.printf("%d videos in the library\n", c.player.NumberOfVideos())
}

func (c *Console) showAllVideos(_ []string) {
	c.println("Here's a list of all available videos:")
	for _, v := range c.player.ShowAllVideos() {
		c.println(v.String())
	}
}

func (c *Console) renderPlay(res player.PlayResult) {
	if res.Stopped != nil {
		c.printf("Stopping video: %s\n", res.Stopped.Title)
	}
	c.printf("Playing video: %s\n", res.Playing.Title)
}

func (c *Console) play(args []string) {
	res, err := c.player.Play(args[0])
	if err != nil {
		c.printf("Cannot play video: %s\n", reason(err))
		return
	}
	c.renderPlay(res)
}

func (c *Console) playRandom(_ []string) {
	res, err := c.player.PlayRandom()
	if err != nil {
		c.println(reason(err))
		return
	}
	c.renderPlay(res)
}

func (c *Console) stop(_ []string) {
	v, err := c.player.Stop()
	if err != nil {
		c.printf("Cannot stop video: %s\n", reason(err))
		return
	}
	c.printf("Stopping video: %s\n", v.Title)
}

func (c *Console) pause(_ []string) {
	res, err := c.player.Pause()
	if err != nil {
		c.printf("Cannot pause video: %s\n", reason(err))
		return
	}
	if res.AlreadyPaused {
		c.printf("Video already paused: %s\n", res.Video.Title)
		return
	}
	c.printf("Pausing video: %s\n", res.Video.Title)
}

func (c *Console) continueVideo(_ []string) {
	v, err := c.player.Continue()
	if err != nil {
		c.printf("Cannot continue video: %s\n", reason(err))
		return
	}
	c.printf("Continuing video: %s\n", v.Title)
}

func (c *Console) showPlaying(_ []string) {
	snap, err := c.player.ShowPlaying()
	if err != nil {
		c.println(reason(err))
		return
	}
	if snap.Paused {
		c.printf("Currently playing: %s - PAUSED\n", snap.Video)
		return
	}
	c.printf("Currently playing: %s\n", snap.Video)
}

func (c *Console) createPlaylist(args []string) {
	name, err := c.player.CreatePlaylist(args[0])
	if err != nil {
		c.printf("Cannot create playlist: %s\n", reason(err))
		return
	}
	c.printf("Successfully created new playlist: %s\n", name)
}

// Playlist messages echo the name as typed, not as stored.

func (c *Console) addToPlaylist(args []string) {
	v, err := c.player.AddVideoToPlaylist(args[0], args[1])
	if err != nil {
		c.printf("Cannot add video to %s: %s\n", args[0], reason(err))
		return
	}
	c.printf("Added video to %s: %s\n", args[0], v.Title)
}

func (c *Console) removeFromPlaylist(args []string) {
	v, err := c.player.RemoveFromPlaylist(args[0], args[1])
	if err != nil {
		c.printf("Cannot remove video from %s: %s\n", args[0], reason(err))
		return
	}
	c.printf("Removed video from %s: %s\n", args[0], v.Title)
}

func (c *Console) clearPlaylist(args []string) {
	if err := c.player.ClearPlaylist(args[0]); err != nil {
		c.printf("Cannot clear playlist %s: %s\n", args[0], reason(err))
		return
	}
	c.printf("Successfully removed all videos from %s\n", args[0])
}

func (c *Console) deletePlaylist(args []string) {
	if err := c.player.DeletePlaylist(args[0]); err != nil {
		c.printf("Cannot delete playlist %s: %s\n", args[0], reason(err))
		return
	}
	c.printf("Deleted playlist: %s\n", args[0])
}

func (c *Console) showPlaylist(args []string) {
	view, err := c.player.ShowPlaylist(args[0])
	if err != nil {
		c.printf("Cannot show playlist %s: %s\n", args[0], reason(err))
		return
	}
	c.printf("Showing playlist: %s\n", args[0])
	if len(view.Videos) == 0 {
		c.println("No videos here yet")
		return
	}
	for _, v := range view.Videos {
		c.println(v.String())
	}
}

func (c *Console) showAllPlaylists(_ []string) {
	names, err := c.player.ShowAllPlaylists()
	if err != nil {
		c.println("No playlists exist yet")
		return
	}
	c.println("Showing all playlists:")
	for _, name := range names {
		c.println(name)
	}
}

func (c *Console) searchVideos(args []string) {
	term := strings.Join(args, " ")
	results, err := c.player.SearchVideos(term)
	if err != nil {
		c.printf("No search results for %s\n", term)
		return
	}
	c.printf("Here are the results for %s:\n", term)
	for i, v := range results {
		c.printf("%d) %s\n", i+1, v)
	}
}

func (c *Console) searchVideosWithTag(args []string) {
	if _, err := c.player.SearchVideosWithTag(args[0]); err != nil {
		c.printf("Cannot search videos with tag: %s\n", err)
	}
}

func (c *Console) flagVideo(args []string) {
	if err := c.player.FlagVideo(args[0], strings.Join(args[1:], " ")); err != nil {
		c.printf("Cannot flag video: %s\n", err)
	}
}

func (c *Console) allowVideo(args []string) {
	if err := c.player.AllowVideo(args[0]); err != nil {
		c.printf("Cannot remove flag from video: %s\n", err)
	}
}

func (c *Console) help(_ []string) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	c.println("Available commands:")
	for _, name := range names {
		cmd := commands[name]
		c.printf("    %-50s %s\n", strings.TrimSpace(name+" "+cmd.syntax), cmd.help)
	}
	c.printf("    %-50s %s\n", "EXIT", "Terminates the program execution.")
}
