/*
Wmconf is the configuration of a keyboard driven tiling window manager, and a
tool to look at it. The window manager itself does the tiling, the focus
handling and the drawing; this module only says which of its layouts, key
bindings, workspaces and bar widgets to use, and how they look.


USAGE

The mod key is the 'Windows' key (mod4) and the alt key is mod1.

Mod and the arrow keys move the focus between windows; with Shift they move
the focused window, and with Control they grow it. Mod and the '=' or '-' key
grow or shrink the main pane of the monadtall layout, or the focused column of
the columns and bsp layouts. Mod and the 'N' key reset all window sizes.

There are nine workspaces, called groups. Mod and a number key from '1' to '9'
switch to that group; with Shift, the focused window is sent there instead and
the current group stays on screen. Odd groups start with the monadtall layout,
even groups with the floating layout. Mod and Tab cycle through the groups,
and Mod, Shift and Tab cycle through the layouts.

Mod and 'W' close the focused window, 'F' makes it fullscreen and 'T' makes it
float. Dragging with Mod and the left or right mouse button moves or resizes a
floating window.

Alt, Control and 'T' open a terminal emulator; Alt and Enter open the
application launcher. The Print key copies a screenshot to the clipboard, Mod
and Print save one, and Mod, Shift and 'S' save a screenshot of a selected
area. Control, Alt and F1 to F7 switch virtual terminals when running on
Wayland, and do nothing otherwise.

On startup, ~/.config/qtile/autostart.sh is run once.


CUSTOMIZATION

Programs, modifier keys, fonts and input devices are read from
$XDG_CONFIG_HOME/wmconf/settings.yaml, for example:
	terminal: foot
	launcher: fuzzel
	keyboard_layout: us
and can be overridden by WMCONF_TERMINAL, WMCONF_FONT and similar environment
variables. Everything else, such as the key bindings, colors and bar widgets,
is done by editing the files in internal/config and re-compiling.


COMMANDS

	wmconf check              validate the configuration
	wmconf keys               list the key bindings
	wmconf keys --conditional only those that depend on the layout or backend
	wmconf keys --names       list the key names a binding may use
	wmconf dump [section]     print the configuration as YAML or JSON
	wmconf press CHORD        show what a key press such as mod4+shift+Return does
	wmconf click CHORD        show what a mouse press such as mod4+Button1 does
	wmconf autostart          run the startup and startup_complete hooks
	wmconf watch              re-evaluate whenever the settings file changes
*/
package main
