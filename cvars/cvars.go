// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"goportal/cvar"
)

var (
	CollisionReenableDelay *cvar.Cvar
	Developer              *cvar.Cvar
	HostFrameRate          *cvar.Cvar
	HostMaxFps             *cvar.Cvar
	HostTimeScale          *cvar.Cvar
	PortalDisableDistance  *cvar.Cvar
	PortalFadeTime         *cvar.Cvar
	PortalMaxRecursions    *cvar.Cvar
	PortalNearClipMin      *cvar.Cvar
	PortalViewHeight       *cvar.Cvar
	SimBodies              *cvar.Cvar
	SimSeed                *cvar.Cvar
	SimSpeed               *cvar.Cvar
	TeleportExitPush       *cvar.Cvar
	TeleportGrace          *cvar.Cvar
	TeleportVelocityCheck  *cvar.Cvar
)

func init() {
	CollisionReenableDelay = cvar.MustRegister("collision_reenable_delay", "0.5", cvar.ARCHIVE)
	Developer = cvar.MustRegister("developer", "0", cvar.NONE)
	HostFrameRate = cvar.MustRegister("host_framerate", "0", cvar.NONE)
	HostMaxFps = cvar.MustRegister("host_maxfps", "72", cvar.ARCHIVE)
	HostTimeScale = cvar.MustRegister("host_timescale", "0", cvar.NONE)
	PortalDisableDistance = cvar.MustRegister("portal_disable_distance", "25", cvar.ARCHIVE)
	PortalFadeTime = cvar.MustRegister("portal_fade_time", "0.25", cvar.ARCHIVE)
	PortalMaxRecursions = cvar.MustRegister("portal_max_recursions", "2", cvar.ARCHIVE)
	PortalNearClipMin = cvar.MustRegister("portal_near_clip_min", "0.01", cvar.NONE)
	PortalViewHeight = cvar.MustRegister("portal_view_height", "512", cvar.ARCHIVE)
	SimBodies = cvar.MustRegister("sim_bodies", "3", cvar.NONE)
	SimSeed = cvar.MustRegister("sim_seed", "1971", cvar.NONE)
	SimSpeed = cvar.MustRegister("sim_speed", "3", cvar.NONE)
	TeleportExitPush = cvar.MustRegister("teleport_exit_push", "0", cvar.ARCHIVE)
	TeleportGrace = cvar.MustRegister("teleport_grace", "1", cvar.ARCHIVE)
	TeleportVelocityCheck = cvar.MustRegister("teleport_velocity_check", "1", cvar.ARCHIVE)
}
